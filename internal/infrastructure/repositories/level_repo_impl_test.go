package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
)

func seedLevel(t *testing.T, repo *LevelRepository, ordinal int, depositValue, dailyGain string) *entities.Level {
	t.Helper()
	l := &entities.Level{
		ID:           uuid.New(),
		Ordinal:      ordinal,
		Name:         "V" + uuid.New().String()[:6],
		DepositValue: decimal.RequireFromString(depositValue),
		DailyGain:    decimal.RequireFromString(dailyGain),
		MonthlyGain:  decimal.RequireFromString(dailyGain).Mul(decimal.NewFromInt(30)),
		CycleDays:    365,
		ImageURL:     null.StringFrom("/media/levels/v1.png"),
	}
	require.NoError(t, repo.Create(context.Background(), l))
	return l
}

func TestLevelRepository_CreateGetUpdateList(t *testing.T) {
	db := newTestDB(t)
	createLevelTables(t, db)
	repo := NewLevelRepository(db)
	ctx := context.Background()

	l2 := seedLevel(t, repo, 2, "250.00", "25.00")
	l1 := seedLevel(t, repo, 1, "50.00", "10.00")

	got, err := repo.GetByID(ctx, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Ordinal)
	assert.True(t, got.DepositValue.Equal(decimal.RequireFromString("50.00")))

	// ordered by deposit value, not insertion
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, l1.ID, list[0].ID)
	assert.Equal(t, l2.ID, list[1].ID)

	l1.Name = "V1 Plus"
	l1.DailyGain = decimal.RequireFromString("12.00")
	require.NoError(t, repo.Update(ctx, l1))

	got, err = repo.GetByID(ctx, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, "V1 Plus", got.Name)
	assert.True(t, got.DailyGain.Equal(decimal.RequireFromString("12.00")))

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, &entities.Level{ID: uuid.New(), Name: "x"}), domainerrors.ErrNotFound)
}

func TestUserLevelRepository_ActiveQueries(t *testing.T) {
	db := newTestDB(t)
	createLevelTables(t, db)
	levelRepo := NewLevelRepository(db)
	repo := NewUserLevelRepository(db)
	ctx := context.Background()

	l1 := seedLevel(t, levelRepo, 1, "50.00", "10.00")
	l2 := seedLevel(t, levelRepo, 2, "250.00", "25.00")
	userID := uuid.New()

	has, err := repo.HasActiveLevel(ctx, userID)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = repo.GetActive(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.Create(ctx, &entities.UserLevel{
		ID: uuid.New(), UserID: userID, LevelID: l1.ID,
		PurchaseDate: time.Now().Add(-time.Hour), IsActive: true,
	}))
	require.NoError(t, repo.Create(ctx, &entities.UserLevel{
		ID: uuid.New(), UserID: userID, LevelID: l2.ID,
		PurchaseDate: time.Now(), IsActive: true,
	}))

	has, err = repo.HasActiveLevel(ctx, userID)
	require.NoError(t, err)
	assert.True(t, has)

	// most recent purchase wins
	active, err := repo.GetActive(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, l2.ID, active.LevelID)
	require.NotNil(t, active.Level)
	assert.Equal(t, 2, active.Level.Ordinal)

	list, err := repo.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	owns, err := repo.OwnsActiveLevel(ctx, userID, l1.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = repo.OwnsActiveLevel(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.False(t, owns)
}
