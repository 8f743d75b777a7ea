package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Level struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Ordinal      int             `gorm:"uniqueIndex;not null"`
	Name         string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	DepositValue decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DailyGain    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MonthlyGain  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CycleDays    int             `gorm:"not null"`
	ImageURL     *string         `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserLevel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	LevelID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Level        Level     `gorm:"foreignKey:LevelID"`
	PurchaseDate time.Time
	IsActive     bool `gorm:"not null;default:true"`
}
