package entities

import (
	"github.com/google/uuid"
)

// BankDetails holds a user's payout destination, one record per user.
type BankDetails struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	BankName          string    `json:"bankName"`
	IBAN              string    `json:"iban"`
	AccountHolderName string    `json:"accountHolderName"`
}

// PlatformBankDetails holds a platform deposit destination shown to users
// on the deposit flow.
type PlatformBankDetails struct {
	ID                uuid.UUID `json:"id"`
	BankName          string    `json:"bankName"`
	IBAN              string    `json:"iban"`
	AccountHolderName string    `json:"accountHolderName"`
}

// UpsertBankDetailsInput represents input for saving bank details
type UpsertBankDetailsInput struct {
	BankName          string `json:"bankName" binding:"required,max=100"`
	IBAN              string `json:"iban" binding:"required,max=50"`
	AccountHolderName string `json:"accountHolderName" binding:"required,max=100"`
}
