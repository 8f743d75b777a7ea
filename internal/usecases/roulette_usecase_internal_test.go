package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoelCaquene/saudi-aramco/internal/config"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/lock"
)

// Embedding the interface keeps the stubs small; only the methods the
// spin path touches are implemented.
type spinUserRepo struct {
	repositories.UserRepository
	user       *entities.User
	spinDeltas []int
	available  []decimal.Decimal
	subsidy    []decimal.Decimal
}

func (s *spinUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.user, nil
}

func (s *spinUserRepo) AddSpins(ctx context.Context, id uuid.UUID, delta int) error {
	s.spinDeltas = append(s.spinDeltas, delta)
	return nil
}

func (s *spinUserRepo) AddToBalances(ctx context.Context, id uuid.UUID, availableDelta, subsidyDelta decimal.Decimal) error {
	s.available = append(s.available, availableDelta)
	s.subsidy = append(s.subsidy, subsidyDelta)
	return nil
}

type spinLogRepo struct {
	repositories.RouletteRepository
	created []*entities.Roulette
}

func (s *spinLogRepo) Create(ctx context.Context, spin *entities.Roulette) error {
	s.created = append(s.created, spin)
	return nil
}

type fixedSettingsRepo struct {
	repositories.SettingsRepository
	prizes string
}

func (s *fixedSettingsRepo) GetRoulette(ctx context.Context) (*entities.RouletteSettings, error) {
	return &entities.RouletteSettings{Prizes: s.prizes}, nil
}

type passthroughUOW struct{}

func (passthroughUOW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func spinBusiness() config.BusinessConfig {
	return config.BusinessConfig{DefaultRoulettePrizes: "100,200,300,500,1000,2000"}
}

func newSpinUsecase(user *entities.User, prizes string) (*RouletteUsecase, *spinUserRepo, *spinLogRepo) {
	userRepo := &spinUserRepo{user: user}
	logRepo := &spinLogRepo{}
	uc := &RouletteUsecase{
		userRepo:     userRepo,
		rouletteRepo: logRepo,
		settingsRepo: &fixedSettingsRepo{prizes: prizes},
		uow:          passthroughUOW{},
		locker:       lock.NewAccountLocker(),
		business:     spinBusiness(),
		pick:         func(n int) int { return 0 },
	}
	return uc, userRepo, logRepo
}

func TestParsePrizeList(t *testing.T) {
	prizes := parsePrizeList("100, 200,abc,-5,0,2000")
	require.Len(t, prizes, 3)
	assert.True(t, prizes[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, prizes[1].Equal(decimal.NewFromInt(200)))
	assert.True(t, prizes[2].Equal(decimal.NewFromInt(2000)))

	assert.Empty(t, parsePrizeList(""))
	assert.Empty(t, parsePrizeList("abc,,"))
}

func TestRouletteUsecase_PrizePoolWeighting(t *testing.T) {
	uc, _, _ := newSpinUsecase(&entities.User{ID: uuid.New()}, "100,2000")

	pool, err := uc.prizePool(context.Background())
	require.NoError(t, err)

	// prizes at or below 1000 get three slots, larger ones a single slot
	require.Len(t, pool, 4)
	small, large := 0, 0
	for _, p := range pool {
		switch {
		case p.Equal(decimal.NewFromInt(100)):
			small++
		case p.Equal(decimal.NewFromInt(2000)):
			large++
		}
	}
	assert.Equal(t, 3, small)
	assert.Equal(t, 1, large)
}

func TestRouletteUsecase_PrizePoolFallback(t *testing.T) {
	uc, _, _ := newSpinUsecase(&entities.User{ID: uuid.New()}, "")

	pool, err := uc.prizePool(context.Background())
	require.NoError(t, err)
	// 100,200,300,500,1000 weighted ×3 plus 2000 once
	assert.Len(t, pool, 16)
}

func TestRouletteUsecase_Spin(t *testing.T) {
	user := &entities.User{ID: uuid.New(), RouletteSpins: 2}
	uc, userRepo, logRepo := newSpinUsecase(user, "100,2000")

	result, err := uc.Spin(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, result.Prize.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, result.SpinsRemaining)

	// one spin consumed, prize credited to both balances, approved log entry
	require.Equal(t, []int{-1}, userRepo.spinDeltas)
	require.Len(t, userRepo.available, 1)
	assert.True(t, userRepo.available[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, userRepo.subsidy[0].Equal(decimal.NewFromInt(100)))
	require.Len(t, logRepo.created, 1)
	assert.True(t, logRepo.created[0].IsApproved)
}

func TestRouletteUsecase_SpinPicksFromPool(t *testing.T) {
	user := &entities.User{ID: uuid.New(), RouletteSpins: 1}
	uc, _, logRepo := newSpinUsecase(user, "100,2000")
	uc.pick = func(n int) int { return n - 1 } // last slot is the heavy prize

	result, err := uc.Spin(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, result.Prize.Equal(decimal.NewFromInt(2000)))
	require.Len(t, logRepo.created, 1)
	assert.True(t, logRepo.created[0].Prize.Equal(decimal.NewFromInt(2000)))
}

func TestRouletteUsecase_SpinWithoutCredits(t *testing.T) {
	user := &entities.User{ID: uuid.New(), RouletteSpins: 0}
	uc, userRepo, _ := newSpinUsecase(user, "100")

	_, err := uc.Spin(context.Background(), user.ID)
	require.ErrorIs(t, err, domainerrors.ErrNoSpinsAvailable)
	assert.Empty(t, userRepo.spinDeltas)
}

func TestRouletteUsecase_GrantSpins(t *testing.T) {
	user := &entities.User{ID: uuid.New()}
	uc, userRepo, _ := newSpinUsecase(user, "100")

	require.NoError(t, uc.GrantSpins(context.Background(), user.ID, 5))
	assert.Equal(t, []int{5}, userRepo.spinDeltas)

	err := uc.GrantSpins(context.Background(), user.ID, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
