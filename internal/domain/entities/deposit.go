package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit is a user-submitted top-up request. It carries no balance
// effect until a staff member approves it; approval is a one-way,
// exactly-once transition.
type Deposit struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Amount         decimal.Decimal `json:"amount"`
	ProofOfPayment string          `json:"proofOfPayment"`
	IsApproved     bool            `json:"isApproved"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// CreateDepositInput represents input for submitting a deposit
type CreateDepositInput struct {
	Amount string `json:"amount" binding:"required"`
	// ProofOfPayment is a reference to the uploaded receipt (identifier or
	// URL); raw bytes never reach this core.
	ProofOfPayment string `json:"proofOfPayment" binding:"required"`
}
