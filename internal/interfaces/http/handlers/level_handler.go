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

type LevelService interface {
	List(ctx context.Context) ([]*entities.Level, error)
	Owned(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Purchase(ctx context.Context, userID, levelID uuid.UUID) (*entities.UserLevel, error)
	Upsert(ctx context.Context, id *uuid.UUID, input *entities.UpsertLevelInput) (*entities.Level, error)
}

// LevelHandler handles level catalog and purchase endpoints
type LevelHandler struct {
	levelUsecase LevelService
}

// NewLevelHandler creates a new level handler
func NewLevelHandler(levelUsecase LevelService) *LevelHandler {
	return &LevelHandler{levelUsecase: levelUsecase}
}

// List returns the level catalog
// GET /api/v1/levels
func (h *LevelHandler) List(c *gin.Context) {
	levels, err := h.levelUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"levels": levels})
}

// Owned returns the IDs of levels the user has purchased
// GET /api/v1/levels/owned
func (h *LevelHandler) Owned(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	owned, err := h.levelUsecase.Owned(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ownedLevelIds": owned})
}

// Purchase buys a level for the authenticated user
// POST /api/v1/levels/:id/purchase
func (h *LevelHandler) Purchase(c *gin.Context) {
	levelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid level ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	userLevel, err := h.levelUsecase.Purchase(c.Request.Context(), userID, levelID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Level not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, userLevel)
}

// Create adds a level to the catalog (staff only)
// POST /api/v1/admin/levels
func (h *LevelHandler) Create(c *gin.Context) {
	var input entities.UpsertLevelInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	level, err := h.levelUsecase.Upsert(c.Request.Context(), nil, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, level)
}

// Update modifies a catalog level (staff only)
// PUT /api/v1/admin/levels/:id
func (h *LevelHandler) Update(c *gin.Context) {
	levelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid level ID"))
		return
	}

	var input entities.UpsertLevelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	level, err := h.levelUsecase.Upsert(c.Request.Context(), &levelID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Level not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, level)
}
