package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
)

func TestUnitOfWork_CommitPersists(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	userRepo := NewUserRepository(db)
	uow := NewUnitOfWork(db)

	user := seedUserWithBalance(t, userRepo, "+244900000040", "100.00")
	other := seedUser(t, userRepo, "+244900000041")

	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := userRepo.AddToBalances(ctx, user.ID, decimal.RequireFromString("-40.00"), decimal.Zero); err != nil {
			return err
		}
		return userRepo.AddToBalances(ctx, other.ID, decimal.RequireFromString("40.00"), decimal.Zero)
	})
	require.NoError(t, err)

	got, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, got.AvailableBalance.Equal(decimal.RequireFromString("60.00")), "got %s", got.AvailableBalance)

	got, err = userRepo.GetByID(context.Background(), other.ID)
	require.NoError(t, err)
	assert.True(t, got.AvailableBalance.Equal(decimal.RequireFromString("40.00")), "got %s", got.AvailableBalance)
}

func TestUnitOfWork_ErrorRollsBack(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	userRepo := NewUserRepository(db)
	uow := NewUnitOfWork(db)

	user := seedUserWithBalance(t, userRepo, "+244900000050", "100.00")

	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := userRepo.AddToBalances(ctx, user.ID, decimal.RequireFromString("-40.00"), decimal.Zero); err != nil {
			return err
		}
		// missing user aborts the whole unit
		return userRepo.AddToBalances(ctx, uuid.New(), decimal.RequireFromString("40.00"), decimal.Zero)
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, got.AvailableBalance.Equal(decimal.RequireFromString("100.00")), "got %s", got.AvailableBalance)
}

func TestUnitOfWork_PanicRollsBack(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	userRepo := NewUserRepository(db)
	uow := NewUnitOfWork(db)

	user := seedUserWithBalance(t, userRepo, "+244900000060", "100.00")

	func() {
		defer func() {
			require.NotNil(t, recover())
		}()
		_ = uow.Do(context.Background(), func(ctx context.Context) error {
			if err := userRepo.AddToBalances(ctx, user.ID, decimal.RequireFromString("-40.00"), decimal.Zero); err != nil {
				return err
			}
			panic(errors.New("boom"))
		})
	}()

	got, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, got.AvailableBalance.Equal(decimal.RequireFromString("100.00")), "got %s", got.AvailableBalance)
}

func TestGetDB_FallsBackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)

	assert.Same(t, db, GetDB(context.Background(), db))
}
