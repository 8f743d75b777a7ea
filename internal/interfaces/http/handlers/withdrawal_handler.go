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

type WithdrawalService interface {
	Request(ctx context.Context, userID uuid.UUID, input *entities.CreateWithdrawalInput) (*entities.Withdrawal, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error)
	UpdateStatus(ctx context.Context, withdrawalID uuid.UUID, status entities.WithdrawalStatus) (*entities.Withdrawal, error)
}

// WithdrawalHandler handles withdrawal endpoints
type WithdrawalHandler struct {
	withdrawalUsecase WithdrawalService
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUsecase WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUsecase: withdrawalUsecase}
}

// Request debits the balance and opens a withdrawal
// POST /api/v1/withdrawals
func (h *WithdrawalHandler) Request(c *gin.Context) {
	var input entities.CreateWithdrawalInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	withdrawal, err := h.withdrawalUsecase.Request(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, withdrawal)
}

// ListMine returns the authenticated user's withdrawals
// GET /api/v1/withdrawals
func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	withdrawals, err := h.withdrawalUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"withdrawals": withdrawals})
}

// UpdateStatus records the settlement outcome (staff only)
// PUT /api/v1/admin/withdrawals/:id/status
func (h *WithdrawalHandler) UpdateStatus(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid withdrawal ID"))
		return
	}

	var input entities.UpdateWithdrawalStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	withdrawal, err := h.withdrawalUsecase.UpdateStatus(c.Request.Context(), withdrawalID, input.Status)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Withdrawal not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, withdrawal)
}
