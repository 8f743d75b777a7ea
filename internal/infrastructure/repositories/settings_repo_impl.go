package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/infrastructure/models"
)

// BankDetailsRepository implements user payout destination operations
type BankDetailsRepository struct {
	db *gorm.DB
}

// NewBankDetailsRepository creates a new bank details repository
func NewBankDetailsRepository(db *gorm.DB) *BankDetailsRepository {
	return &BankDetailsRepository{db: db}
}

// Upsert creates or rewrites the user's bank details
func (r *BankDetailsRepository) Upsert(ctx context.Context, details *entities.BankDetails) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var existing models.BankDetails
	err := db.Where("user_id = ?", details.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m := &models.BankDetails{
			ID:                details.ID,
			UserID:            details.UserID,
			BankName:          details.BankName,
			IBAN:              details.IBAN,
			AccountHolderName: details.AccountHolderName,
		}
		return db.Create(m).Error
	}
	if err != nil {
		return err
	}

	details.ID = existing.ID
	return db.Model(&models.BankDetails{}).
		Where("user_id = ?", details.UserID).
		Updates(map[string]interface{}{
			"bank_name":           details.BankName,
			"iban":                details.IBAN,
			"account_holder_name": details.AccountHolderName,
			"updated_at":          time.Now(),
		}).Error
}

// GetByUserID gets a user's bank details
func (r *BankDetailsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BankDetails, error) {
	var m models.BankDetails
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.BankDetails{
		ID:                m.ID,
		UserID:            m.UserID,
		BankName:          m.BankName,
		IBAN:              m.IBAN,
		AccountHolderName: m.AccountHolderName,
	}, nil
}

// ExistsForUser reports whether the user has bank details on file
func (r *BankDetailsRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.BankDetails{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// PlatformBankDetailsRepository implements platform deposit destinations
type PlatformBankDetailsRepository struct {
	db *gorm.DB
}

// NewPlatformBankDetailsRepository creates a new platform bank details repository
func NewPlatformBankDetailsRepository(db *gorm.DB) *PlatformBankDetailsRepository {
	return &PlatformBankDetailsRepository{db: db}
}

// List returns all platform deposit destinations
func (r *PlatformBankDetailsRepository) List(ctx context.Context) ([]*entities.PlatformBankDetails, error) {
	var detailModels []models.PlatformBankDetails
	if err := GetDB(ctx, r.db).WithContext(ctx).Find(&detailModels).Error; err != nil {
		return nil, err
	}

	details := make([]*entities.PlatformBankDetails, 0, len(detailModels))
	for i := range detailModels {
		m := detailModels[i]
		details = append(details, &entities.PlatformBankDetails{
			ID:                m.ID,
			BankName:          m.BankName,
			IBAN:              m.IBAN,
			AccountHolderName: m.AccountHolderName,
		})
	}
	return details, nil
}

// Create adds a platform deposit destination
func (r *PlatformBankDetailsRepository) Create(ctx context.Context, details *entities.PlatformBankDetails) error {
	m := &models.PlatformBankDetails{
		ID:                details.ID,
		BankName:          details.BankName,
		IBAN:              details.IBAN,
		AccountHolderName: details.AccountHolderName,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// SettingsRepository implements the configuration row reads and writes
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetPlatform returns the platform settings snapshot, falling back to the
// documented defaults when no row exists.
func (r *SettingsRepository) GetPlatform(ctx context.Context) (*entities.PlatformSettings, error) {
	var m models.PlatformSettings
	err := GetDB(ctx, r.db).WithContext(ctx).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.DefaultPlatformSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return &entities.PlatformSettings{
		WhatsAppLink:          m.WhatsAppLink,
		HistoryText:           m.HistoryText,
		DepositInstruction:    m.DepositInstruction,
		WithdrawalInstruction: m.WithdrawalInstruction,
	}, nil
}

// UpdatePlatform rewrites the platform settings row, creating it if absent
func (r *SettingsRepository) UpdatePlatform(ctx context.Context, settings *entities.PlatformSettings) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.PlatformSettings
	err := db.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.PlatformSettings{
			ID:                    uuid.New(),
			WhatsAppLink:          settings.WhatsAppLink,
			HistoryText:           settings.HistoryText,
			DepositInstruction:    settings.DepositInstruction,
			WithdrawalInstruction: settings.WithdrawalInstruction,
		}).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&models.PlatformSettings{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"whats_app_link":         settings.WhatsAppLink,
			"history_text":           settings.HistoryText,
			"deposit_instruction":    settings.DepositInstruction,
			"withdrawal_instruction": settings.WithdrawalInstruction,
			"updated_at":             time.Now(),
		}).Error
}

// GetRoulette returns the roulette settings snapshot; an absent row yields
// an empty prize list, which callers treat as "use defaults".
func (r *SettingsRepository) GetRoulette(ctx context.Context) (*entities.RouletteSettings, error) {
	var m models.RouletteSettings
	err := GetDB(ctx, r.db).WithContext(ctx).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entities.RouletteSettings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &entities.RouletteSettings{Prizes: m.Prizes}, nil
}

// UpdateRoulette rewrites the roulette settings row, creating it if absent
func (r *SettingsRepository) UpdateRoulette(ctx context.Context, settings *entities.RouletteSettings) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.RouletteSettings
	err := db.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.RouletteSettings{
			ID:     uuid.New(),
			Prizes: settings.Prizes,
		}).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&models.RouletteSettings{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"prizes":     settings.Prizes,
			"updated_at": time.Now(),
		}).Error
}
