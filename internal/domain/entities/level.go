package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Level is one entry of the purchasable level catalog. Ordinal is the
// catalog position that drives the referral class tier.
type Level struct {
	ID           uuid.UUID       `json:"id"`
	Ordinal      int             `json:"ordinal"`
	Name         string          `json:"name"`
	DepositValue decimal.Decimal `json:"depositValue"`
	DailyGain    decimal.Decimal `json:"dailyGain"`
	MonthlyGain  decimal.Decimal `json:"monthlyGain"`
	CycleDays    int             `json:"cycleDays"`
	ImageURL     null.String     `json:"imageUrl,omitempty"`
}

// UserLevel is an ownership record linking a user to a purchased level.
// A user may hold several active records at once; the daily claim pays
// out the most recently purchased one.
type UserLevel struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	LevelID      uuid.UUID `json:"levelId"`
	Level        *Level    `json:"level,omitempty"`
	PurchaseDate time.Time `json:"purchaseDate"`
	IsActive     bool      `json:"isActive"`
}

// UpsertLevelInput represents input for catalog management
type UpsertLevelInput struct {
	Ordinal      int    `json:"ordinal" binding:"required,min=1"`
	Name         string `json:"name" binding:"required,min=2,max=50"`
	DepositValue string `json:"depositValue" binding:"required"`
	DailyGain    string `json:"dailyGain" binding:"required"`
	MonthlyGain  string `json:"monthlyGain" binding:"required"`
	CycleDays    int    `json:"cycleDays" binding:"required,min=1"`
	ImageURL     string `json:"imageUrl"`
}
