package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
	"github.com/JoelCaquene/saudi-aramco/pkg/metrics"
)

// DepositUsecase handles the manual deposit workflow
type DepositUsecase struct {
	userRepo    repositories.UserRepository
	depositRepo repositories.DepositRepository
	uow         repositories.UnitOfWork
}

// NewDepositUsecase creates a new deposit usecase
func NewDepositUsecase(
	userRepo repositories.UserRepository,
	depositRepo repositories.DepositRepository,
	uow repositories.UnitOfWork,
) *DepositUsecase {
	return &DepositUsecase{
		userRepo:    userRepo,
		depositRepo: depositRepo,
		uow:         uow,
	}
}

// Create records a pending deposit. No balance moves until staff approve it.
func (u *DepositUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateDepositInput) (*entities.Deposit, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid deposit amount")
	}
	if !amount.IsPositive() {
		return nil, domainerrors.BadRequest("deposit amount must be positive")
	}

	deposit := &entities.Deposit{
		ID:             uuid.New(),
		UserID:         userID,
		Amount:         amount.Round(2),
		ProofOfPayment: input.ProofOfPayment,
		CreatedAt:      time.Now(),
	}
	if err := u.depositRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}

	logger.Info(ctx, "deposit submitted",
		zap.String("user_id", userID.String()),
		zap.String("amount", deposit.Amount.String()))
	return deposit, nil
}

// ListMine lists the user's deposits, newest first
func (u *DepositUsecase) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Deposit, error) {
	return u.depositRepo.ListByUser(ctx, userID)
}

// ListPending lists all unapproved deposits for staff review
func (u *DepositUsecase) ListPending(ctx context.Context) ([]*entities.Deposit, error) {
	return u.depositRepo.ListPending(ctx)
}

// Approve flips the deposit to approved and credits the available balance.
// The flag transition happens at most once, so repeated approvals of the
// same deposit never credit twice.
func (u *DepositUsecase) Approve(ctx context.Context, depositID uuid.UUID) (*entities.Deposit, error) {
	deposit, err := u.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("deposit not found")
		}
		return nil, err
	}

	var credited bool
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		approved, err := u.depositRepo.MarkApproved(ctx, depositID)
		if err != nil {
			return err
		}
		if !approved {
			// already approved earlier; nothing left to credit
			return nil
		}
		credited = true
		deposit.IsApproved = true
		return u.userRepo.AddToBalances(ctx, deposit.UserID, deposit.Amount, decimal.Zero)
	})
	metrics.ObserveOperation("deposit_approve", err)
	if err != nil {
		return nil, err
	}

	if credited {
		logger.Info(ctx, "deposit approved",
			zap.String("deposit_id", depositID.String()),
			zap.String("user_id", deposit.UserID.String()),
			zap.String("amount", deposit.Amount.String()))
	}
	return deposit, nil
}
