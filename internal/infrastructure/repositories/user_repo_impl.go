package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:               user.ID,
		PhoneNumber:      user.PhoneNumber,
		FullName:         user.FullName.Ptr(),
		PasswordHash:     user.PasswordHash,
		IsStaff:          user.IsStaff,
		IsActive:         user.IsActive,
		InviteCode:       user.InviteCode,
		InvitedByID:      user.InvitedByID,
		AvailableBalance: user.AvailableBalance,
		SubsidyBalance:   user.SubsidyBalance,
		LevelActive:      user.LevelActive,
		RouletteSpins:    user.RouletteSpins,
		DateJoined:       user.DateJoined,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByPhone gets a user by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("phone_number = ?", phone).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByInviteCode gets a user by invite code
func (r *UserRepository) GetByInviteCode(ctx context.Context, code string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("invite_code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// InviteCodeExists reports whether an invite code is already assigned
func (r *UserRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("invite_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// ListByReferrer lists users invited by the given referrer, newest first
func (r *UserRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("invited_by_id = ?", referrerID).
		Order("date_joined DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// UpdatePasswordHash replaces a user's password hash
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetLevelActive sets the "has active level" flag
func (r *UserRepository) SetLevelActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"level_active": active,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddToBalances applies the deltas as a single atomic UPDATE. Callers are
// responsible for pre-checking that the result cannot go negative.
func (r *UserRepository) AddToBalances(ctx context.Context, id uuid.UUID, availableDelta, subsidyDelta decimal.Decimal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"available_balance": gorm.Expr("available_balance + ?", availableDelta),
			"subsidy_balance":   gorm.Expr("subsidy_balance + ?", subsidyDelta),
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddSpins adjusts the roulette spin credit counter
func (r *UserRepository) AddSpins(ctx context.Context, id uuid.UUID, delta int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"roulette_spins": gorm.Expr("roulette_spins + ?", delta),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:               m.ID,
		PhoneNumber:      m.PhoneNumber,
		FullName:         null.StringFromPtr(m.FullName),
		PasswordHash:     m.PasswordHash,
		IsStaff:          m.IsStaff,
		IsActive:         m.IsActive,
		InviteCode:       m.InviteCode,
		InvitedByID:      m.InvitedByID,
		AvailableBalance: m.AvailableBalance,
		SubsidyBalance:   m.SubsidyBalance,
		LevelActive:      m.LevelActive,
		RouletteSpins:    m.RouletteSpins,
		DateJoined:       m.DateJoined,
	}
}
