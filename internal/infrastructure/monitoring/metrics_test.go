package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDecisionAllowed(t *testing.T) {
	m := NewMetrics()

	m.RecordDecision("file", true, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DecisionsTotal.WithLabelValues("file", "allowed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DenialsTotal.WithLabelValues("file", "access_denied")))
}

func TestRecordDecisionDenied(t *testing.T) {
	m := NewMetrics()

	m.RecordDecision("file", false, -10)
	m.RecordDecision("file", false, -300)
	m.RecordDecision("javascript", false, -10)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DecisionsTotal.WithLabelValues("file", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DenialsTotal.WithLabelValues("file", "access_denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DenialsTotal.WithLabelValues("file", "invalid_url")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DenialsTotal.WithLabelValues("javascript", "access_denied")))
}

func TestIndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordDecision("file", true, 0)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.DecisionsTotal.WithLabelValues("file", "allowed")))
}
