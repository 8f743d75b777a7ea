package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// LedgerOperations counts money-moving operations by name and outcome.
	LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Total ledger operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	// SubsidyPayouts counts referral subsidy credits by class tier.
	SubsidyPayouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "referral_subsidy_payouts_total",
		Help: "Total referral subsidy payouts by class.",
	}, []string{"class"})
)

type statusCoder interface {
	HTTPStatus() int
}

// ObserveOperation records a ledger operation outcome. Errors carrying a
// 4xx status count as rejections; anything else non-nil counts as an error.
func ObserveOperation(operation string, err error) {
	LedgerOperations.WithLabelValues(operation, outcomeFor(err)).Inc()
}

func outcomeFor(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var sc statusCoder
	if errors.As(err, &sc) && sc.HTTPStatus() < 500 {
		return OutcomeRejected
	}
	return OutcomeError
}
