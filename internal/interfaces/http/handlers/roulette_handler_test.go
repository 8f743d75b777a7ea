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
	"github.com/JoelCaquene/saudi-aramco/internal/usecases"
)

type rouletteServiceStub struct {
	statusFn     func(ctx context.Context, userID uuid.UUID) (*usecases.RouletteStatus, error)
	spinFn       func(ctx context.Context, userID uuid.UUID) (*entities.SpinResult, error)
	grantSpinsFn func(ctx context.Context, userID uuid.UUID, spins int) error
}

func (s *rouletteServiceStub) Status(ctx context.Context, userID uuid.UUID) (*usecases.RouletteStatus, error) {
	return s.statusFn(ctx, userID)
}

func (s *rouletteServiceStub) Spin(ctx context.Context, userID uuid.UUID) (*entities.SpinResult, error) {
	return s.spinFn(ctx, userID)
}

func (s *rouletteServiceStub) GrantSpins(ctx context.Context, userID uuid.UUID, spins int) error {
	return s.grantSpinsFn(ctx, userID, spins)
}

func TestRouletteHandler_Status(t *testing.T) {
	userID := uuid.New()
	stub := &rouletteServiceStub{
		statusFn: func(_ context.Context, id uuid.UUID) (*usecases.RouletteStatus, error) {
			return &usecases.RouletteStatus{Spins: 2, History: []*entities.Roulette{}}, nil
		},
	}
	h := NewRouletteHandler(stub)

	r := newTestRouter(&userID)
	r.GET("/roulette", h.Status)

	w := doJSON(t, r, http.MethodGet, "/roulette", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(2), body["spins"])
}

func TestRouletteHandler_Spin(t *testing.T) {
	userID := uuid.New()
	stub := &rouletteServiceStub{
		spinFn: func(_ context.Context, id uuid.UUID) (*entities.SpinResult, error) {
			return &entities.SpinResult{Prize: decimal.NewFromInt(200), SpinsRemaining: 1}, nil
		},
	}
	h := NewRouletteHandler(stub)

	r := newTestRouter(&userID)
	r.POST("/roulette/spin", h.Spin)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/roulette/spin", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "200")
	})

	t.Run("no spins", func(t *testing.T) {
		stub.spinFn = func(context.Context, uuid.UUID) (*entities.SpinResult, error) {
			return nil, domainerrors.UnprocessableEntity("no roulette spins available", domainerrors.ErrNoSpinsAvailable)
		}
		w := doJSON(t, r, http.MethodPost, "/roulette/spin", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRouletteHandler_GrantSpins(t *testing.T) {
	targetID := uuid.New()
	stub := &rouletteServiceStub{
		grantSpinsFn: func(_ context.Context, id uuid.UUID, spins int) error {
			require.Equal(t, targetID, id)
			require.Equal(t, 5, spins)
			return nil
		},
	}
	h := NewRouletteHandler(stub)

	r := newTestRouter(nil)
	r.POST("/admin/users/:id/spins", h.GrantSpins)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/admin/users/"+targetID.String()+"/spins", map[string]int{"spins": 5})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("zero spins rejected by binding", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/admin/users/"+targetID.String()+"/spins", map[string]int{"spins": 0})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		stub.grantSpinsFn = func(_ context.Context, _ uuid.UUID, spins int) error {
			return domainerrors.ErrNotFound
		}
		w := doJSON(t, r, http.MethodPost, "/admin/users/"+targetID.String()+"/spins", map[string]int{"spins": 5})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
