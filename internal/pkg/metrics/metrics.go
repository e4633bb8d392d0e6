package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stable_booking_http_requests_total",
			Help: "Number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stable_booking_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Slots
	SlotsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stable_booking_slots_generated_total",
			Help: "Slot rows inserted by regeneration",
		},
	)

	SlotsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stable_booking_slots_purged_total",
			Help: "Unbooked slot rows deleted before regeneration",
		},
	)

	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stable_booking_slot_reconcile_duration_seconds",
			Help:    "Time spent reconciling one stable date",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Bookings
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stable_booking_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stable_booking_bookings_cancelled_total",
			Help: "Cancelled bookings by who cancelled",
		},
		[]string{"by"},
	)

	// Scoring
	RidesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stable_booking_rides_scored_total",
			Help: "Scored rides by horse tier",
		},
		[]string{"tier"},
	)

	RatingDelta = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stable_booking_rating_delta_points",
			Help:    "Rank point change per scored ride",
			Buckets: prometheus.LinearBuckets(-40, 10, 9),
		},
	)
)

func RecordHTTPRequest(method, route, status string, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordReconcile(purged int64, generated int, elapsed time.Duration) {
	SlotsPurged.Add(float64(purged))
	SlotsGenerated.Add(float64(generated))
	ReconcileDuration.Observe(elapsed.Seconds())
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation(by string) {
	BookingsCancelled.WithLabelValues(by).Inc()
}

func RecordScoredRide(tier string, delta int) {
	RidesScored.WithLabelValues(tier).Inc()
	RatingDelta.Observe(float64(delta))
}
