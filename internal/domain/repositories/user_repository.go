package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

// UserRepository defines user data operations. Balance mutations are
// expressed as atomic increments so concurrent writers can never lose an
// update; preconditions are checked by usecases under the account lock.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	GetByInviteCode(ctx context.Context, code string) (*entities.User, error)
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entities.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	SetLevelActive(ctx context.Context, id uuid.UUID, active bool) error

	// AddToBalances applies available/subsidy deltas as a single atomic
	// UPDATE (balance = balance + delta).
	AddToBalances(ctx context.Context, id uuid.UUID, availableDelta, subsidyDelta decimal.Decimal) error
	// AddSpins grants (positive) or consumes (negative) roulette spin credits.
	AddSpins(ctx context.Context, id uuid.UUID, delta int) error
}
