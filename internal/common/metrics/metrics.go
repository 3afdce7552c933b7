// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoringRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_scoring_requests_total",
			Help: "Total number of compatibility scoring requests",
		},
		[]string{"category"},
	)

	ScoringFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_scoring_fallbacks_total",
			Help: "Total number of requests answered with the generic fallback",
		},
		[]string{"category"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_scoring_duration_seconds",
			Help: "Duration of compatibility scoring in seconds",
		},
		[]string{"category"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_cache_hits_total",
			Help: "Total number of result cache hits",
		},
		[]string{"category"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_cache_misses_total",
			Help: "Total number of result cache misses",
		},
		[]string{"category"},
	)
)
