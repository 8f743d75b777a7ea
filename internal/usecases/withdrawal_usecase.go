package usecases

import (
	"context"
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

// WithdrawalUsecase handles the payout request workflow
type WithdrawalUsecase struct {
	userRepo        repositories.UserRepository
	withdrawalRepo  repositories.WithdrawalRepository
	bankDetailsRepo repositories.BankDetailsRepository
	uow             repositories.UnitOfWork
	locker          *lock.AccountLocker
	business        config.BusinessConfig
}

// NewWithdrawalUsecase creates a new withdrawal usecase
func NewWithdrawalUsecase(
	userRepo repositories.UserRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	bankDetailsRepo repositories.BankDetailsRepository,
	uow repositories.UnitOfWork,
	locker *lock.AccountLocker,
	business config.BusinessConfig,
) *WithdrawalUsecase {
	return &WithdrawalUsecase{
		userRepo:        userRepo,
		withdrawalRepo:  withdrawalRepo,
		bankDetailsRepo: bankDetailsRepo,
		uow:             uow,
		locker:          locker,
		business:        business,
	}
}

// Request debits the amount from the available balance and records a
// pending withdrawal. Bank details must be on file and the amount must
// meet the configured minimum.
func (u *WithdrawalUsecase) Request(ctx context.Context, userID uuid.UUID, input *entities.CreateWithdrawalInput) (*entities.Withdrawal, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid withdrawal amount")
	}
	amount = amount.Round(2)

	u.locker.Lock(userID)
	defer u.locker.Unlock(userID)

	hasBank, err := u.bankDetailsRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !hasBank {
		appErr := domainerrors.UnprocessableEntity("add your bank details before requesting a withdrawal", domainerrors.ErrNoBankDetails)
		metrics.ObserveOperation("withdrawal_request", appErr)
		return nil, appErr
	}

	if amount.LessThan(u.business.WithdrawalMinimum) {
		appErr := domainerrors.UnprocessableEntity("amount below the withdrawal minimum", domainerrors.ErrBelowMinimum)
		metrics.ObserveOperation("withdrawal_request", appErr)
		return nil, appErr
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.AvailableBalance.LessThan(amount) {
		appErr := domainerrors.UnprocessableEntity("insufficient balance", domainerrors.ErrInsufficientBalance)
		metrics.ObserveOperation("withdrawal_request", appErr)
		return nil, appErr
	}

	withdrawal := &entities.Withdrawal{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Status:    entities.WithdrawalStatusPending,
		CreatedAt: time.Now(),
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.AddToBalances(ctx, userID, amount.Neg(), decimal.Zero); err != nil {
			return err
		}
		return u.withdrawalRepo.Create(ctx, withdrawal)
	})
	metrics.ObserveOperation("withdrawal_request", err)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "withdrawal requested",
		zap.String("user_id", userID.String()),
		zap.String("amount", amount.String()))
	return withdrawal, nil
}

// ListMine lists the user's withdrawals, newest first
func (u *WithdrawalUsecase) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	return u.withdrawalRepo.ListByUser(ctx, userID)
}

// UpdateStatus records the settlement outcome of a withdrawal (staff
// only). The debit happened at request time, so neither approval nor
// rejection moves any balance.
func (u *WithdrawalUsecase) UpdateStatus(ctx context.Context, withdrawalID uuid.UUID, status entities.WithdrawalStatus) (*entities.Withdrawal, error) {
	switch status {
	case entities.WithdrawalStatusPending, entities.WithdrawalStatusApproved, entities.WithdrawalStatusRejected:
	default:
		return nil, domainerrors.BadRequest("unknown withdrawal status")
	}

	if err := u.withdrawalRepo.UpdateStatus(ctx, withdrawalID, status); err != nil {
		return nil, err
	}

	withdrawal, err := u.withdrawalRepo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "withdrawal status updated",
		zap.String("withdrawal_id", withdrawalID.String()),
		zap.String("status", string(status)))
	return withdrawal, nil
}
