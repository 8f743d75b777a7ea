package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Task struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Earnings    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CompletedAt time.Time       `gorm:"index"`
}

type Roulette struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Prize      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsApproved bool            `gorm:"not null;default:true"`
	SpinDate   time.Time
}
