// Package metrics provides Prometheus metrics for the volley rating
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ledger metrics
	gamesRecorded     prometheus.Counter
	gamesEdited       prometheus.Counter
	gamesDeleted      prometheus.Counter
	gamesReplayed     prometheus.Counter
	recomputeDuration prometheus.Histogram
	ledgerSize        prometheus.Gauge
	playerCount       prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "volley",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.gamesRecorded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "games_recorded_total",
		Help:      "Number of games appended to the ledger.",
	})
	m.gamesEdited = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "games_edited_total",
		Help:      "Number of game outcome edits.",
	})
	m.gamesDeleted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "games_deleted_total",
		Help:      "Number of games removed from the ledger.",
	})
	m.gamesReplayed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "games_replayed_total",
		Help:      "Games walked by the recompute engine across all replays.",
	})
	m.recomputeDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "recompute_duration_seconds",
		Help:      "Duration of ledger suffix replays.",
		Buckets:   m.histogramBuckets,
	})
	m.ledgerSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "ledger_games",
		Help:      "Current number of games in the ledger.",
	})
	m.playerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "players",
		Help:      "Current number of registered players.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint, method, and status.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_memory_bytes",
		Help:      "Allocated heap bytes.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "system_goroutines",
		Help:      "Current goroutine count.",
	})

	return m
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordGameRecorded increments the recorded-games counter.
func RecordGameRecorded() { globalManager.gamesRecorded.Inc() }

// RecordGameEdited increments the edited-games counter.
func RecordGameEdited() { globalManager.gamesEdited.Inc() }

// RecordGameDeleted increments the deleted-games counter.
func RecordGameDeleted() { globalManager.gamesDeleted.Inc() }

// RecordRecompute records one replay walk: how many games it touched
// and how long it took.
func RecordRecompute(games int, elapsed time.Duration) {
	globalManager.gamesReplayed.Add(float64(games))
	globalManager.recomputeDuration.Observe(elapsed.Seconds())
}

// UpdateLedgerSize sets the current ledger size gauge.
func UpdateLedgerSize(n int) { globalManager.ledgerSize.Set(float64(n)) }

// UpdatePlayerCount sets the current player count gauge.
func UpdatePlayerCount(n int) { globalManager.playerCount.Set(float64(n)) }

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records the latency of one HTTP request.
func RecordHTTPRequestDuration(endpoint, method, status string, elapsed time.Duration) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(elapsed.Seconds())
}

// UpdateSystemMemoryUsage sets the heap usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) { globalManager.systemGoroutineCount.Set(float64(n)) }
