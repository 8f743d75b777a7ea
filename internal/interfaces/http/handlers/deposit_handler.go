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
)

type DepositService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateDepositInput) (*entities.Deposit, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error)
	ListPending(ctx context.Context) ([]*entities.Deposit, error)
	Approve(ctx context.Context, depositID uuid.UUID) (*entities.Deposit, error)
}

// DepositHandler handles deposit endpoints
type DepositHandler struct {
	depositUsecase DepositService
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(depositUsecase DepositService) *DepositHandler {
	return &DepositHandler{depositUsecase: depositUsecase}
}

// Create submits a deposit with proof of payment
// POST /api/v1/deposits
func (h *DepositHandler) Create(c *gin.Context) {
	var input entities.CreateDepositInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	deposit, err := h.depositUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, deposit)
}

// ListMine returns the authenticated user's deposits
// GET /api/v1/deposits
func (h *DepositHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	deposits, err := h.depositUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deposits": deposits})
}

// ListPending returns deposits awaiting approval (staff only)
// GET /api/v1/admin/deposits/pending
func (h *DepositHandler) ListPending(c *gin.Context) {
	deposits, err := h.depositUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deposits": deposits})
}

// Approve credits a pending deposit (staff only)
// POST /api/v1/admin/deposits/:id/approve
func (h *DepositHandler) Approve(c *gin.Context) {
	depositID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid deposit ID"))
		return
	}

	deposit, err := h.depositUsecase.Approve(c.Request.Context(), depositID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Deposit not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, deposit)
}
