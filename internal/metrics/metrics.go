package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Number of bookings created",
		},
	)

	BookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Number of bookings cancelled",
		},
	)

	RefundedAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "refunded_amount_total",
			Help: "Total amount refunded on cancellations",
		},
	)
)

func Register() {
	prometheus.MustRegister(BookingsCreated, BookingsCancelled, RefundedAmount)
}
