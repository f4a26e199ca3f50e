package auction

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times calls made to the auction service
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the upstream call metrics on reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_upstream_calls_total",
				Help: "Total number of calls made to the auction service.",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auction_upstream_call_duration_seconds",
				Help:    "Latency of calls made to the auction service.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if err := reg.Register(m.calls); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(op, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
