package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barber_booking"

// Metrics holds the booking flow counters. A nil *Metrics is a no-op.
type Metrics struct {
	// BookingRequests counts booking requests by outcome.
	BookingRequests *prometheus.CounterVec

	// Transitions counts status changes by target status.
	Transitions *prometheus.CounterVec

	// AutoRejected counts pending requests rejected by arbitration.
	AutoRejected prometheus.Counter

	// PartialFailures counts accepts whose cleanup batch partially failed.
	PartialFailures prometheus.Counter

	// CancellationsDenied counts refused cancels by reason.
	CancellationsDenied *prometheus.CounterVec

	// SlotsServed observes how many slots an availability query returned.
	SlotsServed prometheus.Histogram

	// HTTPDuration observes request latency.
	HTTPDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		BookingRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_requests_total",
				Help:      "Booking requests by outcome",
			},
			[]string{"outcome"},
		),

		Transitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_transitions_total",
				Help:      "Booking status transitions by target status",
			},
			[]string{"status"},
		),

		AutoRejected: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "arbitration_rejections_total",
				Help:      "Pending requests rejected because another request was accepted",
			},
		),

		PartialFailures: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "arbitration_partial_failures_total",
				Help:      "Accepts whose collision cleanup did not fully persist",
			},
		),

		CancellationsDenied: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cancellations_denied_total",
				Help:      "Refused cancellations by reason",
			},
			[]string{"reason"},
		),

		SlotsServed: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "availability_slots",
				Help:      "Slots returned per availability query",
				Buckets:   []float64{0, 4, 8, 16, 24, 32, 48},
			},
		),

		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) IncRequest(outcome string) {
	if m == nil {
		return
	}
	m.BookingRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncTransition(status string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(status).Inc()
}

func (m *Metrics) AddAutoRejected(n int) {
	if m == nil {
		return
	}
	m.AutoRejected.Add(float64(n))
}

func (m *Metrics) IncPartialFailure() {
	if m == nil {
		return
	}
	m.PartialFailures.Inc()
}

func (m *Metrics) IncCancellationDenied(reason string) {
	if m == nil {
		return
	}
	m.CancellationsDenied.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveSlots(n int) {
	if m == nil {
		return
	}
	m.SlotsServed.Observe(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(method, route, status).Observe(seconds)
}
