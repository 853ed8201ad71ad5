package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.Observe("/api/auth/token", "ok", 30*time.Millisecond)
	m.Observe("/api/auth/token", "ok", 10*time.Millisecond)
	m.Observe("/api/auth/token", "error", 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RemoteCalls.WithLabelValues("/api/auth/token", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RemoteCalls.WithLabelValues("/api/auth/token", "error")))
}

func TestObserveNilReceiver(t *testing.T) {
	// The client treats metrics as optional; a nil receiver is a no-op.
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("/api/auth/token", "ok", time.Millisecond)
	})
}
