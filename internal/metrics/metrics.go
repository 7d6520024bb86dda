// Package metrics exposes Prometheus counters for the caching layers.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lookupCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordbook_lookup_cache_hits_total",
		Help: "Lookup cache hits (no upstream request issued)",
	})
	lookupCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordbook_lookup_cache_misses_total",
		Help: "Lookup cache misses",
	})
	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordbook_upstream_requests_total",
		Help: "Upstream definition requests by outcome",
	}, []string{"outcome"})
	offlineRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordbook_offline_requests_total",
		Help: "Requests through the offline cache by strategy and outcome",
	}, []string{"strategy", "outcome"})
)

var registerOnce sync.Once

// Init registers all collectors with the default registry.
// Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			lookupCacheHits,
			lookupCacheMisses,
			upstreamRequests,
			offlineRequests,
		)
	})
}

// RecordLookupCache records a lookup cache hit or miss.
func RecordLookupCache(hit bool) {
	if hit {
		lookupCacheHits.Inc()
		return
	}
	lookupCacheMisses.Inc()
}

// RecordUpstream records the outcome of an upstream definition request:
// "ok", "not_found" or "error".
func RecordUpstream(outcome string) {
	upstreamRequests.WithLabelValues(outcome).Inc()
}

// RecordOffline records an offline-cache outcome for one of the two
// strategies ("cache_first", "network_first").
func RecordOffline(strategy, outcome string) {
	offlineRequests.WithLabelValues(strategy, outcome).Inc()
}
