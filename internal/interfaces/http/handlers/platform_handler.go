package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/response"
	"github.com/JoelCaquene/saudi-aramco/internal/usecases"
)

type PlatformService interface {
	PlatformInfo(ctx context.Context) (*usecases.PlatformInfo, error)
	UpdatePlatform(ctx context.Context, input *entities.UpdatePlatformSettingsInput) (*entities.PlatformSettings, error)
	UpdateRoulette(ctx context.Context, input *entities.UpdateRouletteSettingsInput) (*entities.RouletteSettings, error)
	AddPlatformBankAccount(ctx context.Context, input *entities.UpsertBankDetailsInput) (*entities.PlatformBankDetails, error)
}

// PlatformHandler handles platform settings endpoints
type PlatformHandler struct {
	settingsUsecase PlatformService
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(settingsUsecase PlatformService) *PlatformHandler {
	return &PlatformHandler{settingsUsecase: settingsUsecase}
}

// Info returns public platform settings and deposit bank accounts
// GET /api/v1/platform
func (h *PlatformHandler) Info(c *gin.Context) {
	info, err := h.settingsUsecase.PlatformInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, info)
}

// UpdateSettings replaces the platform settings (staff only)
// PUT /api/v1/admin/platform
func (h *PlatformHandler) UpdateSettings(c *gin.Context) {
	var input entities.UpdatePlatformSettingsInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	settings, err := h.settingsUsecase.UpdatePlatform(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, settings)
}

// UpdateRoulette replaces the roulette prize list (staff only)
// PUT /api/v1/admin/platform/roulette
func (h *PlatformHandler) UpdateRoulette(c *gin.Context) {
	var input entities.UpdateRouletteSettingsInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	settings, err := h.settingsUsecase.UpdateRoulette(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, settings)
}

// AddBankAccount registers a deposit destination account (staff only)
// POST /api/v1/admin/platform/bank-accounts
func (h *PlatformHandler) AddBankAccount(c *gin.Context) {
	var input entities.UpsertBankDetailsInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	account, err := h.settingsUsecase.AddPlatformBankAccount(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, account)
}
