package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.IncAppointmentsCreated()
	m.IncAppointmentsCreated()
	m.IncSlotConflicts()
	m.IncStatusTransition("PENDING", "CONFIRMED")
	m.IncSupportRequests("answered")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.appointmentsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("PENDING", "CONFIRMED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.supportRequests.WithLabelValues("answered")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncAppointmentsCreated()
		m.IncSlotConflicts()
		m.IncStatusTransition("PENDING", "CANCELLED")
		m.IncInvalidTransitions()
		m.IncSupportRequests("failed")
		m.ObserveHTTPRequest("GET", "/api/v1/appointments", 200, time.Millisecond)
		m.ObserveDBQuery("exec", time.Millisecond)
		m.SetDBConnections(1, 0)
	})
}
