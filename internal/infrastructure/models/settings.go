package models

import (
	"time"

	"github.com/google/uuid"
)

type BankDetails struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BankName          string    `gorm:"type:varchar(100);not null"`
	IBAN              string    `gorm:"type:varchar(50);not null"`
	AccountHolderName string    `gorm:"type:varchar(100);not null"`
	UpdatedAt         time.Time
}

type PlatformBankDetails struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BankName          string    `gorm:"type:varchar(100);not null"`
	IBAN              string    `gorm:"type:varchar(50);not null"`
	AccountHolderName string    `gorm:"type:varchar(100);not null"`
}

// PlatformSettings and RouletteSettings are single-row tables; the
// repositories always read the first row.
type PlatformSettings struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	WhatsAppLink          string    `gorm:"type:varchar(255)"`
	HistoryText           string    `gorm:"type:text"`
	DepositInstruction    string    `gorm:"type:text"`
	WithdrawalInstruction string    `gorm:"type:text"`
	UpdatedAt             time.Time
}

type RouletteSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Prizes    string    `gorm:"type:varchar(255)"`
	UpdatedAt time.Time
}
