// Package observability provides Prometheus metric vectors for the feed
// backend. HTTP-level metrics come from the fiberprometheus middleware; the
// vectors here cover the layers underneath it.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quad_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheOutcomes counts cache-aside lookups by key prefix and outcome (hit/miss).
	CacheOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quad_cache_outcomes_total",
		Help: "Cache-aside lookup outcomes by key prefix",
	}, []string{"prefix", "outcome"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quad_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedFanout records how many followed authors a following-feed request fanned out to.
	FeedFanout = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quad_feed_fanout_authors",
		Help:    "Number of followed authors queried per following-feed assembly",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
