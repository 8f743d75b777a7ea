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

// WithdrawalRepository implements withdrawal workflow operations
type WithdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create records a pending withdrawal
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	m := &models.Withdrawal{
		ID:        withdrawal.ID,
		UserID:    withdrawal.UserID,
		Amount:    withdrawal.Amount,
		Status:    string(withdrawal.Status),
		CreatedAt: withdrawal.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a withdrawal by ID
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	var m models.Withdrawal
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return withdrawalToEntity(&m), nil
}

// ListByUser lists a user's withdrawals, newest first
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	var withdrawalModels []models.Withdrawal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&withdrawalModels).Error
	if err != nil {
		return nil, err
	}

	withdrawals := make([]*entities.Withdrawal, 0, len(withdrawalModels))
	for i := range withdrawalModels {
		withdrawals = append(withdrawals, withdrawalToEntity(&withdrawalModels[i]))
	}
	return withdrawals, nil
}

// UpdateStatus records the external settlement outcome. No balance
// movement happens here; the debit occurred at request time.
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Withdrawal{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SumByUserAndStatus totals a user's withdrawals in the given status
func (r *WithdrawalRepository) SumByUserAndStatus(ctx context.Context, userID uuid.UUID, status entities.WithdrawalStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Withdrawal{}).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func withdrawalToEntity(m *models.Withdrawal) *entities.Withdrawal {
	return &entities.Withdrawal{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Status:    entities.WithdrawalStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
