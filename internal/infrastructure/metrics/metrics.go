package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the gateway's Prometheus metrics.
type Metrics struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	AmountsProcessed  *prometheus.HistogramVec
	ReversalsTotal    prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		OperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_operations_total",
				Help: "Total gateway operations by name and outcome",
			},
			[]string{"operation", "outcome"},
		),
		OperationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_operation_duration_seconds",
				Help:    "Gateway operation duration in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_operation_errors_total",
				Help: "Gateway operation failures by error code",
			},
			[]string{"operation", "code"},
		),
		AmountsProcessed: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_amounts_processed",
				Help:    "Monetary amounts moved per operation",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		ReversalsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_reversals_total",
				Help: "Total successful loan payment reversals",
			},
		),
	}
}
