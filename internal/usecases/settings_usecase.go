package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
)

// PlatformInfo bundles everything the public platform page needs.
type PlatformInfo struct {
	Settings     *entities.PlatformSettings      `json:"settings"`
	BankAccounts []*entities.PlatformBankDetails `json:"bankAccounts"`
}

// SettingsUsecase reads and manages the platform configuration
type SettingsUsecase struct {
	settingsRepo     repositories.SettingsRepository
	platformBankRepo repositories.PlatformBankDetailsRepository
}

// NewSettingsUsecase creates a new settings usecase
func NewSettingsUsecase(
	settingsRepo repositories.SettingsRepository,
	platformBankRepo repositories.PlatformBankDetailsRepository,
) *SettingsUsecase {
	return &SettingsUsecase{
		settingsRepo:     settingsRepo,
		platformBankRepo: platformBankRepo,
	}
}

// PlatformInfo returns the settings snapshot and platform deposit accounts
func (u *SettingsUsecase) PlatformInfo(ctx context.Context) (*PlatformInfo, error) {
	settings, err := u.settingsRepo.GetPlatform(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := u.platformBankRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &PlatformInfo{Settings: settings, BankAccounts: accounts}, nil
}

// UpdatePlatform rewrites the platform settings (staff only)
func (u *SettingsUsecase) UpdatePlatform(ctx context.Context, input *entities.UpdatePlatformSettingsInput) (*entities.PlatformSettings, error) {
	settings := &entities.PlatformSettings{
		WhatsAppLink:          input.WhatsAppLink,
		HistoryText:           input.HistoryText,
		DepositInstruction:    input.DepositInstruction,
		WithdrawalInstruction: input.WithdrawalInstruction,
	}
	if err := u.settingsRepo.UpdatePlatform(ctx, settings); err != nil {
		return nil, err
	}
	logger.Info(ctx, "platform settings updated")
	return settings, nil
}

// UpdateRoulette rewrites the roulette prize list (staff only)
func (u *SettingsUsecase) UpdateRoulette(ctx context.Context, input *entities.UpdateRouletteSettingsInput) (*entities.RouletteSettings, error) {
	settings := &entities.RouletteSettings{Prizes: input.Prizes}
	if err := u.settingsRepo.UpdateRoulette(ctx, settings); err != nil {
		return nil, err
	}
	logger.Info(ctx, "roulette prize list updated", zap.String("prizes", input.Prizes))
	return settings, nil
}

// AddPlatformBankAccount registers a deposit destination (staff only)
func (u *SettingsUsecase) AddPlatformBankAccount(ctx context.Context, input *entities.UpsertBankDetailsInput) (*entities.PlatformBankDetails, error) {
	details := &entities.PlatformBankDetails{
		ID:                uuid.New(),
		BankName:          input.BankName,
		IBAN:              input.IBAN,
		AccountHolderName: input.AccountHolderName,
	}
	if err := u.platformBankRepo.Create(ctx, details); err != nil {
		return nil, err
	}
	logger.Info(ctx, "platform bank account added", zap.String("bank", input.BankName))
	return details, nil
}
