package monitoring

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. Each instance carries its own
// registry so construction is repeatable in tests.
type Metrics struct {
	DecisionsTotal  *prometheus.CounterVec
	DenialsTotal    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Uptime          prometheus.Gauge

	registry  *prometheus.Registry
	startTime time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		DecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gate_decisions_total",
				Help: "Protocol gate decisions by scheme and outcome",
			},
			[]string{"scheme", "outcome"},
		),
		DenialsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gate_denials_total",
				Help: "Protocol gate denials by net error code",
			},
			[]string{"scheme", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "broker_request_duration_seconds",
				Help:    "Broker request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "broker_uptime_seconds",
				Help: "Time since broker start in seconds",
			},
		),
		registry:  reg,
		startTime: time.Now(),
	}
}

// RecordDecision records one gate decision.
func (m *Metrics) RecordDecision(scheme string, allowed bool, code int) {
	outcome := "allowed"
	if !allowed {
		outcome = "denied"
		m.DenialsTotal.WithLabelValues(scheme, codeLabel(code)).Inc()
	}
	m.DecisionsTotal.WithLabelValues(scheme, outcome).Inc()
}

// Handler serves the metrics endpoint for this collector's registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func codeLabel(code int) string {
	switch code {
	case -300:
		return "invalid_url"
	case -10:
		return "access_denied"
	default:
		return "unknown"
	}
}
