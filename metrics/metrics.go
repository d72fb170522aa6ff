// Package metrics exposes Prometheus instrumentation for the payment core.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all payment core metrics.
type Metrics struct {
	PaymentsTotal   *prometheus.CounterVec
	RefundsTotal    *prometheus.CounterVec
	FeesTotal       *prometheus.CounterVec
	ProcessDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on reg. A nil reg uses the
// default registerer.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "payflow"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		PaymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payments",
				Name:      "total",
				Help:      "Total number of payment attempts",
			},
			[]string{"kind", "status"}, // status: completed, failed, rejected
		),
		RefundsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "refunds",
				Name:      "total",
				Help:      "Total number of refund attempts",
			},
			[]string{"kind", "status"}, // status: completed, rejected
		),
		FeesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payments",
				Name:      "fees_minor_units_total",
				Help:      "Total fees charged in minor currency units",
			},
			[]string{"kind"},
		),
		ProcessDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "payments",
				Name:      "process_duration_seconds",
				Help:      "Payment processing duration in seconds",
				Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
			},
			[]string{"kind"},
		),
	}
}

// --- Convenience methods ---

// RecordPayment records a payment attempt.
func (m *Metrics) RecordPayment(kind, status string, fees int64, duration time.Duration) {
	m.PaymentsTotal.WithLabelValues(kind, status).Inc()
	if fees > 0 {
		m.FeesTotal.WithLabelValues(kind).Add(float64(fees))
	}
	m.ProcessDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordRefund records a refund attempt.
func (m *Metrics) RecordRefund(kind, status string) {
	m.RefundsTotal.WithLabelValues(kind, status).Inc()
}
