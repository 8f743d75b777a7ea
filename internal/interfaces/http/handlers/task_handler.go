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

type TaskService interface {
	Status(ctx context.Context, userID uuid.UUID) (*entities.TaskStatus, error)
	Claim(ctx context.Context, userID uuid.UUID) (*entities.TaskClaimResult, error)
}

// TaskHandler handles daily task endpoints
type TaskHandler struct {
	taskUsecase TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskUsecase TaskService) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// Status returns the user's claim eligibility for today
// GET /api/v1/tasks/status
func (h *TaskHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.taskUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Claim completes today's task and credits the daily gain
// POST /api/v1/tasks/claim
func (h *TaskHandler) Claim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.taskUsecase.Claim(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
