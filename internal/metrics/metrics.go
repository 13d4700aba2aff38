package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RentalsCreated counts successfully created rentals.
	RentalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentacar_rentals_created_total",
		Help: "Total rentals created successfully",
	})

	// RentalFailures counts failed rental creations, labeled by reason.
	RentalFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentacar_rental_failures_total",
		Help: "Total failed rental creations, labeled by failure reason",
	}, []string{"reason"})

	// PaymentsDebited counts successful ledger debits.
	PaymentsDebited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentacar_payments_debited_total",
		Help: "Total successful ledger debits",
	})

	// RentalCreateDuration observes end-to-end rental creation latency.
	RentalCreateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rentacar_rental_create_duration_seconds",
		Help:    "Latency distribution of rental creation",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
)
