package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

// BankDetailsRepository defines user payout destination operations
type BankDetailsRepository interface {
	Upsert(ctx context.Context, details *entities.BankDetails) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BankDetails, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

// PlatformBankDetailsRepository defines platform deposit destination reads
type PlatformBankDetailsRepository interface {
	List(ctx context.Context) ([]*entities.PlatformBankDetails, error)
	Create(ctx context.Context, details *entities.PlatformBankDetails) error
}

// SettingsRepository reads and writes the configuration rows. Get never
// fails on an absent row; it returns the documented defaults instead.
type SettingsRepository interface {
	GetPlatform(ctx context.Context) (*entities.PlatformSettings, error)
	UpdatePlatform(ctx context.Context, settings *entities.PlatformSettings) error
	GetRoulette(ctx context.Context) (*entities.RouletteSettings, error)
	UpdateRoulette(ctx context.Context, settings *entities.RouletteSettings) error
}
