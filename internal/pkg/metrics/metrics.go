package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_bookings_total",
			Help: "Total number of persisted bookings by entry path",
		},
		[]string{"path"},
	)

	CancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_cancellations_total",
			Help: "Total number of cancelled bookings",
		},
	)

	SlotConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_slot_conflicts_total",
			Help: "Total number of rejected double-booking attempts",
		},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_webhook_events_total",
			Help: "Total number of payment webhook deliveries",
		},
		[]string{"outcome"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_emails_sent_total",
			Help: "Total number of notification emails by outcome",
		},
		[]string{"kind", "status"},
	)

	DeadLetterRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_dead_letter_retries_total",
			Help: "Total number of dead-letter retry attempts by outcome",
		},
		[]string{"outcome"},
	)
)
