package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamMember is one direct referral enriched with level and class data
// for the team page.
type TeamMember struct {
	PhoneNumber  string          `json:"phoneNumber"`
	DateJoined   time.Time       `json:"dateJoined"`
	IsActive     bool            `json:"isActive"`
	LevelName    string          `json:"levelName"`
	LevelOrdinal int             `json:"levelOrdinal"`
	ClassName    ReferralClass   `json:"className"`
	SubsidyRate  decimal.Decimal `json:"subsidyRate"`
	LastTaskTime *time.Time      `json:"lastTaskTime,omitempty"`
}

// TeamSummary groups a user's direct referrals by referral class.
type TeamSummary struct {
	Members      []*TeamMember `json:"members"`
	TeamCount    int           `json:"teamCount"`
	ClassA       []*TeamMember `json:"classA"`
	ClassB       []*TeamMember `json:"classB"`
	ClassC       []*TeamMember `json:"classC"`
	TotalClassA  int           `json:"totalClassA"`
	TotalClassB  int           `json:"totalClassB"`
	TotalClassC  int           `json:"totalClassC"`
	InviteLink   string        `json:"inviteLink"`
	InviteCode   string        `json:"inviteCode"`
}

// IncomeSummary aggregates a user's financial history for the income page.
type IncomeSummary struct {
	AvailableBalance     decimal.Decimal `json:"availableBalance"`
	SubsidyBalance       decimal.Decimal `json:"subsidyBalance"`
	ActiveLevel          *UserLevel      `json:"activeLevel,omitempty"`
	ApprovedDepositTotal decimal.Decimal `json:"approvedDepositTotal"`
	DailyIncome          decimal.Decimal `json:"dailyIncome"`
	TotalWithdrawals     decimal.Decimal `json:"totalWithdrawals"`
	TotalIncome          decimal.Decimal `json:"totalIncome"`
}
