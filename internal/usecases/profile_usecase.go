package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
)

// ProfileUsecase handles the profile page: bank details and owned levels
type ProfileUsecase struct {
	userRepo        repositories.UserRepository
	userLevelRepo   repositories.UserLevelRepository
	bankDetailsRepo repositories.BankDetailsRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	userRepo repositories.UserRepository,
	userLevelRepo repositories.UserLevelRepository,
	bankDetailsRepo repositories.BankDetailsRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:        userRepo,
		userLevelRepo:   userLevelRepo,
		bankDetailsRepo: bankDetailsRepo,
	}
}

// Profile is the profile page payload.
type Profile struct {
	User        *entities.User        `json:"user"`
	BankDetails *entities.BankDetails `json:"bankDetails,omitempty"`
	Levels      []*entities.UserLevel `json:"levels"`
}

// Get returns the user's profile with bank details and active levels
func (u *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := u.bankDetailsRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	levels, err := u.userLevelRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, BankDetails: details, Levels: levels}, nil
}

// UpsertBankDetails creates or replaces the user's payout destination
func (u *ProfileUsecase) UpsertBankDetails(ctx context.Context, userID uuid.UUID, input *entities.UpsertBankDetailsInput) (*entities.BankDetails, error) {
	details := &entities.BankDetails{
		ID:                uuid.New(),
		UserID:            userID,
		BankName:          input.BankName,
		IBAN:              input.IBAN,
		AccountHolderName: input.AccountHolderName,
	}
	if err := u.bankDetailsRepo.Upsert(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}
