package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/middleware"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/response"
	"github.com/JoelCaquene/saudi-aramco/internal/usecases"
)

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*usecases.Profile, error)
	UpsertBankDetails(ctx context.Context, userID uuid.UUID, input *entities.UpsertBankDetailsInput) (*entities.BankDetails, error)
}

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileUsecase ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase ProfileService) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// Get returns the user's profile with bank details and purchased levels
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpsertBankDetails stores or replaces the user's payout coordinates
// PUT /api/v1/profile/bank-details
func (h *ProfileHandler) UpsertBankDetails(c *gin.Context) {
	var input entities.UpsertBankDetailsInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	details, err := h.profileUsecase.UpsertBankDetails(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, details)
}
