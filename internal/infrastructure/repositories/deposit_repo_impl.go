package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/infrastructure/models"
)

// DepositRepository implements deposit workflow operations
type DepositRepository struct {
	db *gorm.DB
}

// NewDepositRepository creates a new deposit repository
func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create records a pending deposit
func (r *DepositRepository) Create(ctx context.Context, deposit *entities.Deposit) error {
	m := &models.Deposit{
		ID:             deposit.ID,
		UserID:         deposit.UserID,
		Amount:         deposit.Amount,
		ProofOfPayment: deposit.ProofOfPayment,
		IsApproved:     deposit.IsApproved,
		CreatedAt:      deposit.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a deposit by ID
func (r *DepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Deposit, error) {
	var m models.Deposit
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return depositToEntity(&m), nil
}

// ListByUser lists a user's deposits, newest first
func (r *DepositRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	var depositModels []models.Deposit
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&depositModels).Error
	if err != nil {
		return nil, err
	}

	deposits := make([]*entities.Deposit, 0, len(depositModels))
	for i := range depositModels {
		deposits = append(deposits, depositToEntity(&depositModels[i]))
	}
	return deposits, nil
}

// ListPending lists all unapproved deposits, oldest first
func (r *DepositRepository) ListPending(ctx context.Context) ([]*entities.Deposit, error) {
	var depositModels []models.Deposit
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&depositModels).Error
	if err != nil {
		return nil, err
	}

	deposits := make([]*entities.Deposit, 0, len(depositModels))
	for i := range depositModels {
		deposits = append(deposits, depositToEntity(&depositModels[i]))
	}
	return deposits, nil
}

// MarkApproved flips the approval flag exactly once. The WHERE clause on
// the flag makes the transition idempotent: a second call matches zero
// rows and reports false.
func (r *DepositRepository) MarkApproved(ctx context.Context, id uuid.UUID) (bool, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Deposit{}).
		Where("id = ? AND is_approved = ?", id, false).
		Update("is_approved", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SumApprovedByUser totals a user's approved deposits
func (r *DepositRepository) SumApprovedByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Deposit{}).
		Where("user_id = ? AND is_approved = ?", userID, true).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func depositToEntity(m *models.Deposit) *entities.Deposit {
	return &entities.Deposit{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		ProofOfPayment: m.ProofOfPayment,
		IsApproved:     m.IsApproved,
		CreatedAt:      m.CreatedAt,
	}
}
