package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the settlement state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "Pending"
	WithdrawalStatusApproved WithdrawalStatus = "Aprovado"
	WithdrawalStatusRejected WithdrawalStatus = "Rejeitado"
)

// Withdrawal is a payout request. The amount is debited from the user's
// available balance at request time; status transitions track the external
// bank transfer and never re-credit the balance.
type Withdrawal struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Amount    decimal.Decimal  `json:"amount"`
	Status    WithdrawalStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

// CreateWithdrawalInput represents input for requesting a withdrawal
type CreateWithdrawalInput struct {
	Amount string `json:"amount" binding:"required"`
}

// UpdateWithdrawalStatusInput represents staff input for settlement bookkeeping
type UpdateWithdrawalStatusInput struct {
	Status WithdrawalStatus `json:"status" binding:"required"`
}
