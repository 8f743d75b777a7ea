package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

// DepositRepository defines deposit workflow operations
type DepositRepository interface {
	Create(ctx context.Context, deposit *entities.Deposit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Deposit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error)
	ListPending(ctx context.Context) ([]*entities.Deposit, error)
	// MarkApproved flips the approval flag only when it is not already set
	// and reports whether this call performed the transition.
	MarkApproved(ctx context.Context, id uuid.UUID) (bool, error)
	SumApprovedByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// WithdrawalRepository defines withdrawal workflow operations
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entities.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error
	SumByUserAndStatus(ctx context.Context, userID uuid.UUID, status entities.WithdrawalStatus) (decimal.Decimal, error)
}

// TaskRepository defines daily claim log operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	CountByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error)
	SumEarningsByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (decimal.Decimal, error)
	SumEarningsByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	LastByUser(ctx context.Context, userID uuid.UUID) (*entities.Task, error)
}

// RouletteRepository defines spin log operations
type RouletteRepository interface {
	Create(ctx context.Context, spin *entities.Roulette) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Roulette, error)
}
