package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the flight tracker
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Upstream Provider Metrics
	ProviderRequestsTotal   prometheus.CounterVec
	ProviderRequestDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Tracking Metrics
	TrackingSessionsActive prometheus.Gauge
	ResolverTicksTotal     prometheus.CounterVec
	SearchesTotal          prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flighttracker_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flighttracker_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flighttracker_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Upstream Provider Metrics
		ProviderRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flighttracker_provider_requests_total",
				Help: "Total upstream provider requests by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		ProviderRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flighttracker_provider_request_duration_seconds",
				Help:    "Upstream provider latency distribution in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flighttracker_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flighttracker_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Tracking Metrics
		TrackingSessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "flighttracker_tracking_sessions_active",
				Help: "Current number of active tracking sessions",
			},
		),
		ResolverTicksTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flighttracker_resolver_ticks_total",
				Help: "Total position resolver ticks by resulting state",
			},
			[]string{"state"},
		),
		SearchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flighttracker_searches_total",
				Help: "Total flight searches handled",
			},
		),
	}
}
