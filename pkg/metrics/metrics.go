package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rental",
			Name:      "booking_created_total",
			Help:      "Count of booking requests created.",
		},
	)

	ownerDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rental",
			Name:      "owner_decision_total",
			Help:      "Count of owner decisions over booking requests.",
		},
		[]string{"decision"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, ownerDecision)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncOwnerDecision(decision string) {
	ownerDecision.WithLabelValues(decision).Inc()
}
