package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/middleware"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/response"
	"github.com/JoelCaquene/saudi-aramco/internal/usecases"
)

type RouletteService interface {
	Status(ctx context.Context, userID uuid.UUID) (*usecases.RouletteStatus, error)
	Spin(ctx context.Context, userID uuid.UUID) (*entities.SpinResult, error)
	GrantSpins(ctx context.Context, userID uuid.UUID, spins int) error
}

// RouletteHandler handles roulette endpoints
type RouletteHandler struct {
	rouletteUsecase RouletteService
}

// NewRouletteHandler creates a new roulette handler
func NewRouletteHandler(rouletteUsecase RouletteService) *RouletteHandler {
	return &RouletteHandler{rouletteUsecase: rouletteUsecase}
}

// Status returns remaining spins and spin history
// GET /api/v1/roulette
func (h *RouletteHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.rouletteUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Spin consumes a credit and awards a prize
// POST /api/v1/roulette/spin
func (h *RouletteHandler) Spin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.rouletteUsecase.Spin(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GrantSpins adds spin credits to a user (staff only)
// POST /api/v1/admin/users/:id/spins
func (h *RouletteHandler) GrantSpins(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input entities.GrantSpinsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.rouletteUsecase.GrantSpins(c.Request.Context(), userID, input.Spins); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Spins granted"})
}
