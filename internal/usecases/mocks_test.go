package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByInviteCode(ctx context.Context, code string) (*entities.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entities.User, error) {
	args := m.Called(ctx, referrerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) SetLevelActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) AddToBalances(ctx context.Context, id uuid.UUID, availableDelta, subsidyDelta decimal.Decimal) error {
	args := m.Called(ctx, id, availableDelta, subsidyDelta)
	return args.Error(0)
}

func (m *MockUserRepository) AddSpins(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// Mock LevelRepository
type MockLevelRepository struct {
	mock.Mock
}

func (m *MockLevelRepository) Create(ctx context.Context, level *entities.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockLevelRepository) Update(ctx context.Context, level *entities.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockLevelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Level, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *MockLevelRepository) List(ctx context.Context) ([]*entities.Level, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Level), args.Error(1)
}

// Mock UserLevelRepository
type MockUserLevelRepository struct {
	mock.Mock
}

func (m *MockUserLevelRepository) Create(ctx context.Context, userLevel *entities.UserLevel) error {
	args := m.Called(ctx, userLevel)
	return args.Error(0)
}

func (m *MockUserLevelRepository) GetActive(ctx context.Context, userID uuid.UUID) (*entities.UserLevel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserLevel), args.Error(1)
}

func (m *MockUserLevelRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*entities.UserLevel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserLevel), args.Error(1)
}

func (m *MockUserLevelRepository) HasActiveLevel(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserLevelRepository) OwnsActiveLevel(ctx context.Context, userID, levelID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, levelID)
	return args.Bool(0), args.Error(1)
}

// Mock DepositRepository
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) Create(ctx context.Context, deposit *entities.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Deposit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Deposit), args.Error(1)
}

func (m *MockDepositRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Deposit), args.Error(1)
}

func (m *MockDepositRepository) ListPending(ctx context.Context) ([]*entities.Deposit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Deposit), args.Error(1)
}

func (m *MockDepositRepository) MarkApproved(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepositRepository) SumApprovedByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Mock WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) SumByUserAndStatus(ctx context.Context, userID uuid.UUID, status entities.WithdrawalStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Mock TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) CountByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	args := m.Called(ctx, userID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) SumEarningsByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTaskRepository) SumEarningsByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTaskRepository) LastByUser(ctx context.Context, userID uuid.UUID) (*entities.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

// Mock RouletteRepository
type MockRouletteRepository struct {
	mock.Mock
}

func (m *MockRouletteRepository) Create(ctx context.Context, spin *entities.Roulette) error {
	args := m.Called(ctx, spin)
	return args.Error(0)
}

func (m *MockRouletteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Roulette, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Roulette), args.Error(1)
}

// Mock BankDetailsRepository
type MockBankDetailsRepository struct {
	mock.Mock
}

func (m *MockBankDetailsRepository) Upsert(ctx context.Context, details *entities.BankDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockBankDetailsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BankDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BankDetails), args.Error(1)
}

func (m *MockBankDetailsRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// Mock PlatformBankDetailsRepository
type MockPlatformBankDetailsRepository struct {
	mock.Mock
}

func (m *MockPlatformBankDetailsRepository) List(ctx context.Context) ([]*entities.PlatformBankDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PlatformBankDetails), args.Error(1)
}

func (m *MockPlatformBankDetailsRepository) Create(ctx context.Context, details *entities.PlatformBankDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

// Mock SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetPlatform(ctx context.Context) (*entities.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlatformSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdatePlatform(ctx context.Context, settings *entities.PlatformSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetRoulette(ctx context.Context) (*entities.RouletteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RouletteSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateRoulette(ctx context.Context, settings *entities.RouletteSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
