package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoelCaquene/saudi-aramco/internal/config"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/lock"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
	"github.com/JoelCaquene/saudi-aramco/pkg/metrics"
)

// TaskUsecase handles the daily claim flow
type TaskUsecase struct {
	userRepo      repositories.UserRepository
	userLevelRepo repositories.UserLevelRepository
	taskRepo      repositories.TaskRepository
	uow           repositories.UnitOfWork
	locker        *lock.AccountLocker
	business      config.BusinessConfig
}

// NewTaskUsecase creates a new task usecase
func NewTaskUsecase(
	userRepo repositories.UserRepository,
	userLevelRepo repositories.UserLevelRepository,
	taskRepo repositories.TaskRepository,
	uow repositories.UnitOfWork,
	locker *lock.AccountLocker,
	business config.BusinessConfig,
) *TaskUsecase {
	return &TaskUsecase{
		userRepo:      userRepo,
		userLevelRepo: userLevelRepo,
		taskRepo:      taskRepo,
		uow:           uow,
		locker:        locker,
		business:      business,
	}
}

// Status reports the user's claim eligibility for today
func (u *TaskUsecase) Status(ctx context.Context, userID uuid.UUID) (*entities.TaskStatus, error) {
	status := &entities.TaskStatus{MaxTasks: entities.MaxTasksPerDay}

	active, err := u.userLevelRepo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return status, nil
		}
		return nil, err
	}
	status.HasActiveLevel = true
	status.ActiveLevel = active

	completed, err := u.taskRepo.CountByUserOnDay(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	status.TasksCompletedToday = completed
	return status, nil
}

// Claim performs the once-daily task. The claimant's active level pays its
// daily gain into the available balance; when the claimant was invited,
// the referrer receives a subsidy proportional to the gain, rated by the
// claimant's level ordinal.
func (u *TaskUsecase) Claim(ctx context.Context, userID uuid.UUID) (*entities.TaskClaimResult, error) {
	u.locker.Lock(userID)
	defer u.locker.Unlock(userID)

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	active, err := u.userLevelRepo.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			appErr := domainerrors.UnprocessableEntity("no active level", domainerrors.ErrNoActiveLevel)
			metrics.ObserveOperation("task_claim", appErr)
			return nil, appErr
		}
		return nil, err
	}

	completed, err := u.taskRepo.CountByUserOnDay(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if completed >= entities.MaxTasksPerDay {
		appErr := domainerrors.UnprocessableEntity("daily task limit reached", domainerrors.ErrDailyLimitReached)
		metrics.ObserveOperation("task_claim", appErr)
		return nil, appErr
	}

	gain := active.Level.DailyGain.Round(2)
	result := &entities.TaskClaimResult{DailyGain: gain, Subsidy: decimal.Zero}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		task := &entities.Task{
			ID:          uuid.New(),
			UserID:      userID,
			Earnings:    gain,
			CompletedAt: time.Now(),
		}
		if err := u.taskRepo.Create(ctx, task); err != nil {
			return err
		}
		if err := u.userRepo.AddToBalances(ctx, userID, gain, decimal.Zero); err != nil {
			return err
		}

		subsidy, err := u.paySubsidy(ctx, user, active.Level.Ordinal, gain)
		if err != nil {
			return err
		}
		result.Subsidy = subsidy
		return nil
	})
	metrics.ObserveOperation("task_claim", err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "task claimed",
		zap.String("user_id", userID.String()),
		zap.String("daily_gain", gain.String()),
		zap.String("subsidy", result.Subsidy.String()))
	return result, nil
}

// paySubsidy credits the referral subsidy to the claimant's referrer on
// both balances. Returns the amount paid, zero when nobody qualified.
func (u *TaskUsecase) paySubsidy(ctx context.Context, claimant *entities.User, levelOrdinal int, gain decimal.Decimal) (decimal.Decimal, error) {
	if claimant.InvitedByID == nil {
		return decimal.Zero, nil
	}

	class, rate := entities.ResolveReferralClass(levelOrdinal)
	if rate.IsZero() {
		return decimal.Zero, nil
	}

	if u.business.ReferralRequireActiveLevel {
		eligible, err := u.userLevelRepo.HasActiveLevel(ctx, *claimant.InvitedByID)
		if err != nil {
			return decimal.Zero, err
		}
		if !eligible {
			return decimal.Zero, nil
		}
	}

	subsidy := gain.Mul(rate).Round(2)
	if err := u.userRepo.AddToBalances(ctx, *claimant.InvitedByID, subsidy, subsidy); err != nil {
		return decimal.Zero, err
	}

	metrics.SubsidyPayouts.WithLabelValues(string(class)).Inc()
	logger.Info(ctx, "subsidy paid",
		zap.String("referrer_id", claimant.InvitedByID.String()),
		zap.String("claimant_id", claimant.ID.String()),
		zap.String("class", string(class)),
		zap.String("amount", subsidy.String()))
	return subsidy, nil
}
