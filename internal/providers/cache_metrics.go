package providers

import (
	"time"

	"github.com/abheesh-03/Flight-Tracker/internal/constants"
	"github.com/abheesh-03/Flight-Tracker/internal/metrics"
)

// observeProviderDuration records the latency of one upstream request.
func observeProviderDuration(reg *metrics.MetricsRegistry, provider string, start time.Time) {
	if reg == nil {
		return
	}
	reg.ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

// countCache records a cache hit or miss under the key-prefix label.
func countCache(reg *metrics.MetricsRegistry, prefix constants.CachePrefix, hit bool) {
	if reg == nil {
		return
	}
	if hit {
		reg.CacheHitsTotal.WithLabelValues(string(prefix)).Inc()
	} else {
		reg.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
	}
}
