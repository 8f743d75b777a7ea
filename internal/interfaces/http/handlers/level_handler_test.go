package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
)

type levelServiceStub struct {
	listFn     func(ctx context.Context) ([]*entities.Level, error)
	ownedFn    func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	purchaseFn func(ctx context.Context, userID, levelID uuid.UUID) (*entities.UserLevel, error)
	upsertFn   func(ctx context.Context, id *uuid.UUID, input *entities.UpsertLevelInput) (*entities.Level, error)
}

func (s *levelServiceStub) List(ctx context.Context) ([]*entities.Level, error) {
	return s.listFn(ctx)
}

func (s *levelServiceStub) Owned(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.ownedFn(ctx, userID)
}

func (s *levelServiceStub) Purchase(ctx context.Context, userID, levelID uuid.UUID) (*entities.UserLevel, error) {
	return s.purchaseFn(ctx, userID, levelID)
}

func (s *levelServiceStub) Upsert(ctx context.Context, id *uuid.UUID, input *entities.UpsertLevelInput) (*entities.Level, error) {
	return s.upsertFn(ctx, id, input)
}

func TestLevelHandler_List(t *testing.T) {
	stub := &levelServiceStub{
		listFn: func(context.Context) ([]*entities.Level, error) {
			return []*entities.Level{
				{ID: uuid.New(), Ordinal: 1, Name: "Nivel 1", DepositValue: decimal.NewFromInt(50)},
			}, nil
		},
	}
	h := NewLevelHandler(stub)

	r := newTestRouter(nil)
	r.GET("/levels", h.List)

	w := doJSON(t, r, http.MethodGet, "/levels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Nivel 1")
}

func TestLevelHandler_Purchase(t *testing.T) {
	userID := uuid.New()
	levelID := uuid.New()

	stub := &levelServiceStub{
		purchaseFn: func(_ context.Context, gotUser, gotLevel uuid.UUID) (*entities.UserLevel, error) {
			require.Equal(t, userID, gotUser)
			require.Equal(t, levelID, gotLevel)
			return &entities.UserLevel{ID: uuid.New(), UserID: gotUser, LevelID: gotLevel, IsActive: true}, nil
		},
	}
	h := NewLevelHandler(stub)

	r := newTestRouter(&userID)
	r.POST("/levels/:id/purchase", h.Purchase)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/levels/"+levelID.String()+"/purchase", nil)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/levels/not-a-uuid/purchase", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown level", func(t *testing.T) {
		stub.purchaseFn = func(context.Context, uuid.UUID, uuid.UUID) (*entities.UserLevel, error) {
			return nil, domainerrors.ErrNotFound
		}
		w := doJSON(t, r, http.MethodPost, "/levels/"+levelID.String()+"/purchase", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		stub.purchaseFn = func(context.Context, uuid.UUID, uuid.UUID) (*entities.UserLevel, error) {
			return nil, domainerrors.UnprocessableEntity("insufficient balance", domainerrors.ErrInsufficientBalance)
		}
		w := doJSON(t, r, http.MethodPost, "/levels/"+levelID.String()+"/purchase", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestLevelHandler_CreateAndUpdate(t *testing.T) {
	stub := &levelServiceStub{
		upsertFn: func(_ context.Context, id *uuid.UUID, input *entities.UpsertLevelInput) (*entities.Level, error) {
			level := &entities.Level{Ordinal: input.Ordinal, Name: input.Name}
			if id != nil {
				level.ID = *id
			} else {
				level.ID = uuid.New()
			}
			return level, nil
		},
	}
	h := NewLevelHandler(stub)

	r := newTestRouter(nil)
	r.POST("/admin/levels", h.Create)
	r.PUT("/admin/levels/:id", h.Update)

	payload := map[string]interface{}{
		"ordinal":      1,
		"name":         "Nivel 1",
		"depositValue": "50.00",
		"dailyGain":    "4.00",
		"monthlyGain":  "120.00",
		"cycleDays":    30,
	}

	t.Run("create", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/admin/levels", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create missing fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/admin/levels", map[string]interface{}{"name": "x"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		id := uuid.New()
		w := doJSON(t, r, http.MethodPut, "/admin/levels/"+id.String(), payload)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), id.String())
	})

	t.Run("update unknown level", func(t *testing.T) {
		stub.upsertFn = func(context.Context, *uuid.UUID, *entities.UpsertLevelInput) (*entities.Level, error) {
			return nil, domainerrors.ErrNotFound
		}
		w := doJSON(t, r, http.MethodPut, "/admin/levels/"+uuid.New().String(), payload)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
