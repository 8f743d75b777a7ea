package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/infrastructure/models"
)

// TaskRepository implements daily claim log operations
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create records a completed claim
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	m := &models.Task{
		ID:          task.ID,
		UserID:      task.UserID,
		Earnings:    task.Earnings,
		CompletedAt: task.CompletedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// CountByUserOnDay counts a user's claims within the calendar day that
// contains the given instant (local time).
func (r *TaskRepository) CountByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	start, end := dayBounds(day)
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Task{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start, end).
		Count(&count).Error
	return int(count), err
}

// SumEarningsByUserOnDay totals a user's earnings for the calendar day
func (r *TaskRepository) SumEarningsByUserOnDay(ctx context.Context, userID uuid.UUID, day time.Time) (decimal.Decimal, error) {
	start, end := dayBounds(day)
	var total decimal.Decimal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Task{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start, end).
		Select("COALESCE(SUM(earnings), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumEarningsByUser totals all of a user's task earnings
func (r *TaskRepository) SumEarningsByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Task{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(earnings), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// LastByUser returns the most recent claim, or ErrNotFound
func (r *TaskRepository) LastByUser(ctx context.Context, userID uuid.UUID) (*entities.Task, error) {
	var m models.Task
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		Earnings:    m.Earnings,
		CompletedAt: m.CompletedAt,
	}, nil
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// RouletteRepository implements spin log operations
type RouletteRepository struct {
	db *gorm.DB
}

// NewRouletteRepository creates a new roulette repository
func NewRouletteRepository(db *gorm.DB) *RouletteRepository {
	return &RouletteRepository{db: db}
}

// Create records a spin
func (r *RouletteRepository) Create(ctx context.Context, spin *entities.Roulette) error {
	m := &models.Roulette{
		ID:         spin.ID,
		UserID:     spin.UserID,
		Prize:      spin.Prize,
		IsApproved: spin.IsApproved,
		SpinDate:   spin.SpinDate,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByUser lists a user's spins, newest first
func (r *RouletteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Roulette, error) {
	var spinModels []models.Roulette
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("spin_date DESC").
		Find(&spinModels).Error
	if err != nil {
		return nil, err
	}

	spins := make([]*entities.Roulette, 0, len(spinModels))
	for i := range spinModels {
		m := spinModels[i]
		spins = append(spins, &entities.Roulette{
			ID:         m.ID,
			UserID:     m.UserID,
			Prize:      m.Prize,
			IsApproved: m.IsApproved,
			SpinDate:   m.SpinDate,
		})
	}
	return spins, nil
}
