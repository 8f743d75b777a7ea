package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// User represents a platform account. Balances are currency values with
// two decimal places; InvitedBy is a non-owning back-reference to the
// account whose invite code was used at registration.
type User struct {
	ID               uuid.UUID       `json:"id"`
	PhoneNumber      string          `json:"phoneNumber"`
	FullName         null.String     `json:"fullName,omitempty"`
	PasswordHash     string          `json:"-"`
	IsStaff          bool            `json:"isStaff"`
	IsActive         bool            `json:"isActive"`
	InviteCode       string          `json:"inviteCode"`
	InvitedByID      *uuid.UUID      `json:"invitedById,omitempty"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	SubsidyBalance   decimal.Decimal `json:"subsidyBalance"`
	LevelActive      bool            `json:"levelActive"`
	RouletteSpins    int             `json:"rouletteSpins"`
	DateJoined       time.Time       `json:"dateJoined"`
}

// RegisterInput represents input for account registration
type RegisterInput struct {
	PhoneNumber     string `json:"phoneNumber" binding:"required,min=6,max=20"`
	FullName        string `json:"fullName"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	InviteCode      string `json:"inviteCode"`
}

// LoginInput represents input for login
type LoginInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// ChangePasswordInput represents input for changing the password
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
	// Warning carries non-fatal registration notices, e.g. an invite code
	// that did not match any account.
	Warning string `json:"warning,omitempty"`
}
