package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/JoelCaquene/saudi-aramco/internal/domain/entities"
	domainerrors "github.com/JoelCaquene/saudi-aramco/internal/domain/errors"
	"github.com/JoelCaquene/saudi-aramco/internal/domain/repositories"
	"github.com/JoelCaquene/saudi-aramco/pkg/crypto"
	"github.com/JoelCaquene/saudi-aramco/pkg/jwt"
	"github.com/JoelCaquene/saudi-aramco/pkg/logger"
)

// inviteCodeAttempts bounds the collision retry loop when minting codes.
const inviteCodeAttempts = 10

// WarnUnknownInviteCode is attached to a registration that referenced an
// invite code no account owns. The account is still created, without a
// referrer.
const WarnUnknownInviteCode = "invite code not recognized; account created without a referrer"

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account. The invite code is optional; a code
// that matches no account does not abort registration, the response just
// carries a warning and no referrer is linked.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.BadRequest("passwords do not match")
	}

	_, err := u.userRepo.GetByPhone(ctx, input.PhoneNumber)
	if err == nil {
		return nil, domainerrors.Conflict("phone number already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	var invitedByID *uuid.UUID
	var warning string
	if input.InviteCode != "" {
		referrer, err := u.userRepo.GetByInviteCode(ctx, input.InviteCode)
		switch {
		case err == nil:
			if referrer.PhoneNumber == input.PhoneNumber {
				return nil, domainerrors.UnprocessableEntity("cannot use your own invite code", domainerrors.ErrSelfReferral)
			}
			invitedByID = &referrer.ID
		case errors.Is(err, domainerrors.ErrNotFound):
			warning = WarnUnknownInviteCode
			logger.Warn(ctx, "registration with unknown invite code",
				zap.String("invite_code", input.InviteCode))
		default:
			return nil, err
		}
	}

	inviteCode, err := u.mintInviteCode(ctx)
	if err != nil {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		PhoneNumber:  input.PhoneNumber,
		FullName:     null.NewString(input.FullName, input.FullName != ""),
		PasswordHash: passwordHash,
		IsActive:     true,
		InviteCode:   inviteCode,
		InvitedByID:  invitedByID,
		DateJoined:   time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered",
		zap.String("user_id", user.ID.String()),
		zap.Bool("has_referrer", invitedByID != nil))

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.PhoneNumber, user.IsStaff)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
		Warning:      warning,
	}, nil
}

// Login authenticates a user by phone number and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByPhone(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid phone number or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid phone number or password")
	}
	if !user.IsActive {
		return nil, domainerrors.Forbidden("account is disabled")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.PhoneNumber, user.IsStaff)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("account no longer exists")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.Forbidden("account is disabled")
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.PhoneNumber, user.IsStaff)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}

// Me returns the authenticated user's account
func (u *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// ChangePassword verifies the current password and stores a new hash
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.Unauthorized("current password is incorrect")
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePasswordHash(ctx, userID, hash)
}

func (u *AuthUsecase) mintInviteCode(ctx context.Context) (string, error) {
	for i := 0; i < inviteCodeAttempts; i++ {
		code := crypto.GenerateInviteCode()
		exists, err := u.userRepo.InviteCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domainerrors.InternalError(errors.New("could not mint a unique invite code"))
}
