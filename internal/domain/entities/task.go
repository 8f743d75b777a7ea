package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxTasksPerDay is the number of daily claims a user may complete.
const MaxTasksPerDay = 1

// Task records one successful daily claim and the earnings it credited.
type Task struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Earnings    decimal.Decimal `json:"earnings"`
	CompletedAt time.Time       `json:"completedAt"`
}

// TaskStatus describes a user's claim eligibility for today.
type TaskStatus struct {
	HasActiveLevel      bool       `json:"hasActiveLevel"`
	ActiveLevel         *UserLevel `json:"activeLevel,omitempty"`
	TasksCompletedToday int        `json:"tasksCompletedToday"`
	MaxTasks            int        `json:"maxTasks"`
}

// TaskClaimResult is the outcome of a successful claim.
type TaskClaimResult struct {
	DailyGain decimal.Decimal `json:"dailyGain"`
	// Subsidy is the amount forwarded to the referrer, zero when no
	// referrer was paid.
	Subsidy decimal.Decimal `json:"subsidy"`
}
