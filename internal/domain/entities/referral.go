package entities

import "github.com/shopspring/decimal"

// ReferralClass labels the subsidy tier a level ordinal falls into.
type ReferralClass string

const (
	ReferralClassA    ReferralClass = "A"
	ReferralClassB    ReferralClass = "B"
	ReferralClassC    ReferralClass = "C"
	ReferralClassNone ReferralClass = "N/A"
)

var (
	rateClassA = decimal.NewFromFloat(0.03)
	rateClassB = decimal.NewFromFloat(0.05)
	rateClassC = decimal.NewFromFloat(0.07)
)

// ResolveReferralClass maps a level ordinal to its referral class and
// subsidy rate. Ordinals 1-3 pay class A at 3%, 4-6 class B at 5%, 7 and
// above class C at 7%. Anything else, including non-positive ordinals,
// falls through to no class and a zero rate.
func ResolveReferralClass(ordinal int) (ReferralClass, decimal.Decimal) {
	switch {
	case ordinal >= 1 && ordinal <= 3:
		return ReferralClassA, rateClassA
	case ordinal >= 4 && ordinal <= 6:
		return ReferralClassB, rateClassB
	case ordinal >= 7:
		return ReferralClassC, rateClassC
	}
	return ReferralClassNone, decimal.Zero
}
