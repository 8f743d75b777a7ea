package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
)

// LevelRepository defines level catalog operations
type LevelRepository interface {
	Create(ctx context.Context, level *entities.Level) error
	Update(ctx context.Context, level *entities.Level) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Level, error)
	// List returns the catalog ordered by deposit value ascending.
	List(ctx context.Context) ([]*entities.Level, error)
}

// UserLevelRepository defines level ownership operations
type UserLevelRepository interface {
	Create(ctx context.Context, userLevel *entities.UserLevel) error
	// GetActive returns the most recently purchased active record with its
	// level preloaded, or ErrNotFound.
	GetActive(ctx context.Context, userID uuid.UUID) (*entities.UserLevel, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entities.UserLevel, error)
	HasActiveLevel(ctx context.Context, userID uuid.UUID) (bool, error)
	OwnsActiveLevel(ctx context.Context, userID, levelID uuid.UUID) (bool, error)
}
