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
)

type TeamService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*entities.TeamSummary, error)
}

type IncomeService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*entities.IncomeSummary, error)
}

// TeamHandler handles referral team and income endpoints
type TeamHandler struct {
	teamUsecase   TeamService
	incomeUsecase IncomeService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamUsecase TeamService, incomeUsecase IncomeService) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase, incomeUsecase: incomeUsecase}
}

// Summary returns the user's referral tree grouped by class
// GET /api/v1/team
func (h *TeamHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	summary, err := h.teamUsecase.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// Income returns the user's earnings overview
// GET /api/v1/income
func (h *TeamHandler) Income(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	summary, err := h.incomeUsecase.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
