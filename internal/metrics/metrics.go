package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vetify",
			Name:      "availability_requests_total",
			Help:      "Availability lookups by channel.",
		},
		[]string{"channel"},
	)

	slotConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vetify",
			Name:      "slot_conflicts_total",
			Help:      "Rejected slot checks and commits by conflict type.",
		},
		[]string{"type"},
	)

	cashTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vetify",
			Name:      "cash_transitions_total",
			Help:      "Drawer and shift state transitions.",
		},
		[]string{"entity", "transition"},
	)

	shiftReconciliation = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vetify",
			Name:      "shift_reconciliation_total",
			Help:      "Settled shifts by outcome (surplus, shortage, exact).",
		},
		[]string{"outcome"},
	)

	requestsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vetify",
			Name:      "appointment_requests_expired_total",
			Help:      "Pending appointment requests moved to EXPIRED.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityRequests, slotConflicts, cashTransitions, shiftReconciliation, requestsExpired)
	})
}

func IncAvailabilityRequest(channel string) {
	availabilityRequests.WithLabelValues(channel).Inc()
}

func IncSlotConflict(conflictType string) {
	slotConflicts.WithLabelValues(conflictType).Inc()
}

func IncCashTransition(entity, transition string) {
	cashTransitions.WithLabelValues(entity, transition).Inc()
}

func IncShiftReconciliation(outcome string) {
	shiftReconciliation.WithLabelValues(outcome).Inc()
}

func AddRequestsExpired(n int64) {
	if n > 0 {
		requestsExpired.Add(float64(n))
	}
}
