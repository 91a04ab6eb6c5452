package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncRequest("created")
	m.IncRequest("created")
	m.IncTransition("accepted")
	m.AddAutoRejected(2)
	m.IncPartialFailure()
	m.IncCancellationDenied("too_late")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingRequests.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AutoRejected))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PartialFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CancellationsDenied.WithLabelValues("too_late")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncRequest("created")
		m.AddAutoRejected(3)
		m.ObserveSlots(10)
		m.ObserveHTTP("GET", "/health", "200", 0.01)
	})
}
