package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PhoneNumber      string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	FullName         *string         `gorm:"type:varchar(255)"`
	PasswordHash     string          `gorm:"type:varchar(255);not null"`
	IsStaff          bool            `gorm:"not null;default:false"`
	IsActive         bool            `gorm:"not null;default:true"`
	InviteCode       string          `gorm:"type:varchar(8);uniqueIndex;not null"`
	InvitedByID      *uuid.UUID      `gorm:"type:uuid;index"`
	AvailableBalance decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SubsidyBalance   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	LevelActive      bool            `gorm:"not null;default:false"`
	RouletteSpins    int             `gorm:"not null;default:0"`
	DateJoined       time.Time
	UpdatedAt        time.Time
}
