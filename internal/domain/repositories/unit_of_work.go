package repositories

import (
	"context"
)

// UnitOfWork executes a function within a transaction scope. Repositories
// invoked with the context it passes to fn share one transaction; the
// transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
