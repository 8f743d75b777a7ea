package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/infrastructure/models"
)

// LevelRepository implements level catalog operations
type LevelRepository struct {
	db *gorm.DB
}

// NewLevelRepository creates a new level repository
func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

// Create adds a level to the catalog
func (r *LevelRepository) Create(ctx context.Context, level *entities.Level) error {
	m := levelToModel(level)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// Update rewrites a catalog entry
func (r *LevelRepository) Update(ctx context.Context, level *entities.Level) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Level{}).
		Where("id = ?", level.ID).
		Updates(map[string]interface{}{
			"ordinal":       level.Ordinal,
			"name":          level.Name,
			"deposit_value": level.DepositValue,
			"daily_gain":    level.DailyGain,
			"monthly_gain":  level.MonthlyGain,
			"cycle_days":    level.CycleDays,
			"image_url":     level.ImageURL.Ptr(),
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

// GetByID gets a catalog entry by ID
func (r *LevelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Level, error) {
	var m models.Level
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return levelToEntity(&m), nil
}

// List returns the catalog ordered by deposit value
func (r *LevelRepository) List(ctx context.Context) ([]*entities.Level, error) {
	var levelModels []models.Level
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("deposit_value ASC").
		Find(&levelModels).Error
	if err != nil {
		return nil, err
	}

	levels := make([]*entities.Level, 0, len(levelModels))
	for i := range levelModels {
		levels = append(levels, levelToEntity(&levelModels[i]))
	}
	return levels, nil
}

// UserLevelRepository implements level ownership operations
type UserLevelRepository struct {
	db *gorm.DB
}

// NewUserLevelRepository creates a new user level repository
func NewUserLevelRepository(db *gorm.DB) *UserLevelRepository {
	return &UserLevelRepository{db: db}
}

// Create records a level purchase
func (r *UserLevelRepository) Create(ctx context.Context, userLevel *entities.UserLevel) error {
	m := &models.UserLevel{
		ID:           userLevel.ID,
		UserID:       userLevel.UserID,
		LevelID:      userLevel.LevelID,
		PurchaseDate: userLevel.PurchaseDate,
		IsActive:     userLevel.IsActive,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetActive returns the most recently purchased active record
func (r *UserLevelRepository) GetActive(ctx context.Context, userID uuid.UUID) (*entities.UserLevel, error) {
	var m models.UserLevel
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Level").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("purchase_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userLevelToEntity(&m), nil
}

// ListActive lists all active ownership records for a user
func (r *UserLevelRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*entities.UserLevel, error) {
	var levelModels []models.UserLevel
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Level").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("purchase_date DESC").
		Find(&levelModels).Error
	if err != nil {
		return nil, err
	}

	userLevels := make([]*entities.UserLevel, 0, len(levelModels))
	for i := range levelModels {
		userLevels = append(userLevels, userLevelToEntity(&levelModels[i]))
	}
	return userLevels, nil
}

// HasActiveLevel reports whether the user holds any active level
func (r *UserLevelRepository) HasActiveLevel(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.UserLevel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count > 0, err
}

// OwnsActiveLevel reports whether the user holds the given level active
func (r *UserLevelRepository) OwnsActiveLevel(ctx context.Context, userID, levelID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.UserLevel{}).
		Where("user_id = ? AND level_id = ? AND is_active = ?", userID, levelID, true).
		Count(&count).Error
	return count > 0, err
}

func levelToModel(level *entities.Level) *models.Level {
	return &models.Level{
		ID:           level.ID,
		Ordinal:      level.Ordinal,
		Name:         level.Name,
		DepositValue: level.DepositValue,
		DailyGain:    level.DailyGain,
		MonthlyGain:  level.MonthlyGain,
		CycleDays:    level.CycleDays,
		ImageURL:     level.ImageURL.Ptr(),
	}
}

func levelToEntity(m *models.Level) *entities.Level {
	return &entities.Level{
		ID:           m.ID,
		Ordinal:      m.Ordinal,
		Name:         m.Name,
		DepositValue: m.DepositValue,
		DailyGain:    m.DailyGain,
		MonthlyGain:  m.MonthlyGain,
		CycleDays:    m.CycleDays,
		ImageURL:     null.StringFromPtr(m.ImageURL),
	}
}

func userLevelToEntity(m *models.UserLevel) *entities.UserLevel {
	ul := &entities.UserLevel{
		ID:           m.ID,
		UserID:       m.UserID,
		LevelID:      m.LevelID,
		PurchaseDate: m.PurchaseDate,
		IsActive:     m.IsActive,
	}
	if m.Level.ID != uuid.Nil {
		ul.Level = levelToEntity(&m.Level)
	}
	return ul
}
