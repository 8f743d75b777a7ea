package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/JoelCaquene/saudi-aramco/internal/config"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/lock"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
	"github.com/JoelCaquene/saudi-aramco/pkg/metrics"
)

// LevelUsecase handles the level catalog and purchases
type LevelUsecase struct {
	userRepo      repositories.UserRepository
	levelRepo     repositories.LevelRepository
	userLevelRepo repositories.UserLevelRepository
	uow           repositories.UnitOfWork
	locker        *lock.AccountLocker
	business      config.BusinessConfig
}

// NewLevelUsecase creates a new level usecase
func NewLevelUsecase(
	userRepo repositories.UserRepository,
	levelRepo repositories.LevelRepository,
	userLevelRepo repositories.UserLevelRepository,
	uow repositories.UnitOfWork,
	locker *lock.AccountLocker,
	business config.BusinessConfig,
) *LevelUsecase {
	return &LevelUsecase{
		userRepo:      userRepo,
		levelRepo:     levelRepo,
		userLevelRepo: userLevelRepo,
		uow:           uow,
		locker:        locker,
		business:      business,
	}
}

// List returns the catalog ordered by deposit value
func (u *LevelUsecase) List(ctx context.Context) ([]*entities.Level, error) {
	return u.levelRepo.List(ctx)
}

// Owned returns the IDs of levels the user holds active
func (u *LevelUsecase) Owned(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	userLevels, err := u.userLevelRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(userLevels))
	for _, ul := range userLevels {
		ids = append(ids, ul.LevelID)
	}
	return ids, nil
}

// Purchase debits the level price from the buyer's available balance and
// activates the level. When the buyer was invited and their referrer
// qualifies, the referrer receives the fixed purchase bonus on both
// balances.
func (u *LevelUsecase) Purchase(ctx context.Context, userID, levelID uuid.UUID) (*entities.UserLevel, error) {
	u.locker.Lock(userID)
	defer u.locker.Unlock(userID)

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	level, err := u.levelRepo.GetByID(ctx, levelID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("level not found")
		}
		return nil, err
	}

	owned, err := u.userLevelRepo.OwnsActiveLevel(ctx, userID, levelID)
	if err != nil {
		return nil, err
	}
	if owned {
		appErr := domainerrors.UnprocessableEntity("level already owned", domainerrors.ErrLevelAlreadyOwned)
		metrics.ObserveOperation("level_purchase", appErr)
		return nil, appErr
	}

	if user.AvailableBalance.LessThan(level.DepositValue) {
		appErr := domainerrors.UnprocessableEntity("insufficient balance", domainerrors.ErrInsufficientBalance)
		metrics.ObserveOperation("level_purchase", appErr)
		return nil, appErr
	}

	userLevel := &entities.UserLevel{
		ID:           uuid.New(),
		UserID:       userID,
		LevelID:      levelID,
		Level:        level,
		PurchaseDate: time.Now(),
		IsActive:     true,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.AddToBalances(ctx, userID, level.DepositValue.Neg(), decimal.Zero); err != nil {
			return err
		}
		if err := u.userLevelRepo.Create(ctx, userLevel); err != nil {
			return err
		}
		if err := u.userRepo.SetLevelActive(ctx, userID, true); err != nil {
			return err
		}
		return u.payPurchaseBonus(ctx, user)
	})
	metrics.ObserveOperation("level_purchase", err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "level purchased",
		zap.String("user_id", userID.String()),
		zap.String("level", level.Name),
		zap.String("amount", level.DepositValue.String()))
	return userLevel, nil
}

// Upsert creates or updates a catalog entry (staff only)
func (u *LevelUsecase) Upsert(ctx context.Context, id *uuid.UUID, input *entities.UpsertLevelInput) (*entities.Level, error) {
	depositValue, err := decimal.NewFromString(input.DepositValue)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid deposit value")
	}
	dailyGain, err := decimal.NewFromString(input.DailyGain)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid daily gain")
	}
	monthlyGain, err := decimal.NewFromString(input.MonthlyGain)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid monthly gain")
	}

	level := &entities.Level{
		Ordinal:      input.Ordinal,
		Name:         input.Name,
		DepositValue: depositValue.Round(2),
		DailyGain:    dailyGain.Round(2),
		MonthlyGain:  monthlyGain.Round(2),
		CycleDays:    input.CycleDays,
		ImageURL:     null.NewString(input.ImageURL, input.ImageURL != ""),
	}

	if id == nil {
		level.ID = uuid.New()
		if err := u.levelRepo.Create(ctx, level); err != nil {
			return nil, err
		}
		return level, nil
	}

	level.ID = *id
	if err := u.levelRepo.Update(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// payPurchaseBonus credits the fixed invite bonus to the buyer's referrer.
// The bonus requires the referrer to hold an active level.
func (u *LevelUsecase) payPurchaseBonus(ctx context.Context, buyer *entities.User) error {
	if buyer.InvitedByID == nil {
		return nil
	}

	if u.business.ReferralRequireActiveLevel {
		eligible, err := u.userLevelRepo.HasActiveLevel(ctx, *buyer.InvitedByID)
		if err != nil {
			return err
		}
		if !eligible {
			return nil
		}
	}

	bonus := u.business.ReferralPurchaseBonus.Round(2)
	if err := u.userRepo.AddToBalances(ctx, *buyer.InvitedByID, bonus, bonus); err != nil {
		return err
	}

	logger.Info(ctx, "purchase bonus paid",
		zap.String("referrer_id", buyer.InvitedByID.String()),
		zap.String("buyer_id", buyer.ID.String()),
		zap.String("amount", bonus.String()))
	return nil
}
