package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Roulette is an immutable log entry for one spin. Entries are created
// already approved.
type Roulette struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	Prize      decimal.Decimal `json:"prize"`
	IsApproved bool            `json:"isApproved"`
	SpinDate   time.Time       `json:"spinDate"`
}

// SpinResult is the outcome of a successful spin.
type SpinResult struct {
	Prize          decimal.Decimal `json:"prize"`
	SpinsRemaining int             `json:"spinsRemaining"`
}

// GrantSpinsInput represents staff input for granting spin credits.
type GrantSpinsInput struct {
	Spins int `json:"spins" binding:"required,min=1"`
}
