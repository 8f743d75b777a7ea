package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
)

// IncomeUsecase aggregates a user's financial history
type IncomeUsecase struct {
	userRepo       repositories.UserRepository
	userLevelRepo  repositories.UserLevelRepository
	depositRepo    repositories.DepositRepository
	withdrawalRepo repositories.WithdrawalRepository
	taskRepo       repositories.TaskRepository
}

// NewIncomeUsecase creates a new income usecase
func NewIncomeUsecase(
	userRepo repositories.UserRepository,
	userLevelRepo repositories.UserLevelRepository,
	depositRepo repositories.DepositRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	taskRepo repositories.TaskRepository,
) *IncomeUsecase {
	return &IncomeUsecase{
		userRepo:       userRepo,
		userLevelRepo:  userLevelRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		taskRepo:       taskRepo,
	}
}

// Summary builds the income page aggregates. Total income counts every
// task earning ever paid plus the subsidy balance, which is where team
// subsidies and roulette prizes accumulate.
func (u *IncomeUsecase) Summary(ctx context.Context, userID uuid.UUID) (*entities.IncomeSummary, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entities.IncomeSummary{
		AvailableBalance: user.AvailableBalance,
		SubsidyBalance:   user.SubsidyBalance,
	}

	active, err := u.userLevelRepo.GetActive(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	summary.ActiveLevel = active

	if summary.ApprovedDepositTotal, err = u.depositRepo.SumApprovedByUser(ctx, userID); err != nil {
		return nil, err
	}
	if summary.DailyIncome, err = u.taskRepo.SumEarningsByUserOnDay(ctx, userID, time.Now()); err != nil {
		return nil, err
	}
	if summary.TotalWithdrawals, err = u.withdrawalRepo.SumByUserAndStatus(ctx, userID, entities.WithdrawalStatusApproved); err != nil {
		return nil, err
	}

	taskTotal, err := u.taskRepo.SumEarningsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalIncome = taskTotal.Add(user.SubsidyBalance)
	return summary, nil
}
