package usecases

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoelCaquene/saudi-aramco/internal/config"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/lock"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
	"github.com/JoelCaquene/saudi-aramco/pkg/metrics"
)

// weightedPrizeCeiling is the prize value at or below which a prize
// appears three times in the draw pool instead of once.
var weightedPrizeCeiling = decimal.NewFromInt(1000)

// RouletteStatus is the spin page payload.
type RouletteStatus struct {
	Spins   int                  `json:"spins"`
	History []*entities.Roulette `json:"history"`
}

// RouletteUsecase handles spin credits, draws and the spin log
type RouletteUsecase struct {
	userRepo     repositories.UserRepository
	rouletteRepo repositories.RouletteRepository
	settingsRepo repositories.SettingsRepository
	uow          repositories.UnitOfWork
	locker       *lock.AccountLocker
	business     config.BusinessConfig

	// pick returns a pseudo-random index in [0, n); replaced in tests.
	pick func(n int) int
}

// NewRouletteUsecase creates a new roulette usecase
func NewRouletteUsecase(
	userRepo repositories.UserRepository,
	rouletteRepo repositories.RouletteRepository,
	settingsRepo repositories.SettingsRepository,
	uow repositories.UnitOfWork,
	locker *lock.AccountLocker,
	business config.BusinessConfig,
) *RouletteUsecase {
	return &RouletteUsecase{
		userRepo:     userRepo,
		rouletteRepo: rouletteRepo,
		settingsRepo: settingsRepo,
		uow:          uow,
		locker:       locker,
		business:     business,
		pick:         rand.Intn,
	}
}

// Status returns the user's remaining spins and spin history
func (u *RouletteUsecase) Status(ctx context.Context, userID uuid.UUID) (*RouletteStatus, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := u.rouletteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RouletteStatus{Spins: user.RouletteSpins, History: history}, nil
}

// Spin consumes one spin credit and draws a prize from the weighted pool.
// The prize is credited to both the subsidy and available balances and
// an approved log entry is written.
func (u *RouletteUsecase) Spin(ctx context.Context, userID uuid.UUID) (*entities.SpinResult, error) {
	u.locker.Lock(userID)
	defer u.locker.Unlock(userID)

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RouletteSpins <= 0 {
		appErr := domainerrors.UnprocessableEntity("no roulette spins available", domainerrors.ErrNoSpinsAvailable)
		metrics.ObserveOperation("roulette_spin", appErr)
		return nil, appErr
	}

	pool, err := u.prizePool(ctx)
	if err != nil {
		return nil, err
	}
	prize := pool[u.pick(len(pool))]

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.AddSpins(ctx, userID, -1); err != nil {
			return err
		}
		spin := &entities.Roulette{
			ID:         uuid.New(),
			UserID:     userID,
			Prize:      prize,
			IsApproved: true,
			SpinDate:   time.Now(),
		}
		if err := u.rouletteRepo.Create(ctx, spin); err != nil {
			return err
		}
		return u.userRepo.AddToBalances(ctx, userID, prize, prize)
	})
	metrics.ObserveOperation("roulette_spin", err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "roulette spin",
		zap.String("user_id", userID.String()),
		zap.String("prize", prize.String()))
	return &entities.SpinResult{Prize: prize, SpinsRemaining: user.RouletteSpins - 1}, nil
}

// GrantSpins adds spin credits to a user's account (staff only)
func (u *RouletteUsecase) GrantSpins(ctx context.Context, userID uuid.UUID, spins int) error {
	if spins <= 0 {
		return domainerrors.BadRequest("spins must be positive")
	}
	if err := u.userRepo.AddSpins(ctx, userID, spins); err != nil {
		return err
	}
	logger.Info(ctx, "roulette spins granted",
		zap.String("user_id", userID.String()),
		zap.Int("spins", spins))
	return nil
}

// prizePool builds the weighted draw pool from the admin-configured prize
// list, falling back to the compiled default list. Prizes at or below
// 1000 appear three times, larger ones once.
func (u *RouletteUsecase) prizePool(ctx context.Context) ([]decimal.Decimal, error) {
	settings, err := u.settingsRepo.GetRoulette(ctx)
	if err != nil {
		return nil, err
	}

	prizes := parsePrizeList(settings.Prizes)
	if len(prizes) == 0 {
		prizes = parsePrizeList(u.business.DefaultRoulettePrizes)
	}
	if len(prizes) == 0 {
		return nil, domainerrors.InternalError(domainerrors.ErrInvalidInput)
	}

	pool := make([]decimal.Decimal, 0, len(prizes)*3)
	for _, prize := range prizes {
		if prize.LessThanOrEqual(weightedPrizeCeiling) {
			pool = append(pool, prize, prize, prize)
		} else {
			pool = append(pool, prize)
		}
	}
	return pool, nil
}

// parsePrizeList parses a comma-separated prize list, skipping entries
// that are not positive integers.
func parsePrizeList(csv string) []decimal.Decimal {
	parts := strings.Split(csv, ",")
	prizes := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value <= 0 {
			continue
		}
		prizes = append(prizes, decimal.NewFromInt(int64(value)))
	}
	return prizes
}
