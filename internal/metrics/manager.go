// Package metrics defines the Prometheus collectors exported by the tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests          *prometheus.CounterVec
	CounterSessionsSaved     prometheus.Counter
	CounterImports           *prometheus.CounterVec
	CounterPersistFailures   *prometheus.CounterVec
	CounterRestTimersExpired prometheus.Counter

	// gauges
	GaugeStoredLogs prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("dumbbell", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("dumbbell", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_total",
		Help:      "The total number of HTTP requests",
	}, []string{"method", "status"})
	counterSessionsSaved := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_saved_total",
		Help:      "The total number of saved workout sessions",
	})
	counterImports := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "imports_total",
		Help:      "The total number of log imports by outcome",
	}, []string{"status"})
	counterPersistFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persist_failures_total",
		Help:      "The total number of failed writes to the key-value store",
	}, []string{"key"})
	counterRestTimersExpired := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_expired_total",
		Help:      "The total number of rest countdowns that ran to zero",
	})

	gaugeStoredLogs := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stored_logs",
		Help:      "Number of workout logs currently stored",
	})

	histReqDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		Name:      "request_duration_seconds",
		Help:      "Total duration of HTTP requests in seconds",
	})

	return &Manager{
		CounterRequests:          counterRequests,
		CounterSessionsSaved:     counterSessionsSaved,
		CounterImports:           counterImports,
		CounterPersistFailures:   counterPersistFailures,
		CounterRestTimersExpired: counterRestTimersExpired,
		GaugeStoredLogs:          gaugeStoredLogs,
		HistRequestDuration:      histReqDuration,
	}
}
