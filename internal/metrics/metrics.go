// Package metrics provides the centralized Prometheus metrics registry for
// the prop scanner.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ScansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "scans_total",
		Help:      "Total number of scan runs",
	})
	GamesFetchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "games_fetched_total",
		Help:      "Total number of per-game quote fetches attempted",
	})
	GameFetchFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "game_fetch_failures_total",
		Help:      "Total number of per-game fetch failures (isolated, not fatal)",
	})
	QuotesIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "quotes_ingested_total",
		Help:      "Total number of validated quotes handed to the engine",
	})
	QuotesRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "quotes_rejected_total",
		Help:      "Total number of malformed or non-O/U records rejected at the boundary",
	})
	EdgesFoundTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "edges_found_total",
		Help:      "Total number of actionable edges found, by edge type",
	}, []string{"edge_type"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "cache_hits_total",
		Help:      "Total number of quote cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_scout",
		Name:      "cache_misses_total",
		Help:      "Total number of quote cache misses",
	})
)

// Gauge metrics
var (
	LastScanProps = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_scout",
		Name:      "last_scan_props",
		Help:      "Number of analyzed props produced by the most recent scan",
	})
	LastScanEdges = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "prop_scout",
		Name:      "last_scan_edges",
		Help:      "Number of actionable edges in the most recent scan",
	})
)

// Histogram metrics
var (
	ScanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_scout",
		Name:      "scan_duration_seconds",
		Help:      "Duration of full scan runs in seconds",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
	})
	GameFetchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_scout",
		Name:      "game_fetch_latency_seconds",
		Help:      "Latency of per-game quote fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(ScansTotal)
		registry.MustRegister(GamesFetchedTotal)
		registry.MustRegister(GameFetchFailuresTotal)
		registry.MustRegister(QuotesIngestedTotal)
		registry.MustRegister(QuotesRejectedTotal)
		registry.MustRegister(EdgesFoundTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		registry.MustRegister(LastScanProps)
		registry.MustRegister(LastScanEdges)

		registry.MustRegister(ScanDuration)
		registry.MustRegister(GameFetchLatency)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordEdgeFound records one actionable edge by type.
func RecordEdgeFound(edgeType string) {
	EdgesFoundTotal.WithLabelValues(edgeType).Inc()
}
