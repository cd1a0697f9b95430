package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FallbackHits tracks fallback cache hits.
	FallbackHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "connector_fallback_cache_hits_total",
			Help: "Total number of fallback cache hits",
		},
	)

	// FallbackMisses tracks fallback cache misses.
	FallbackMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "connector_fallback_cache_misses_total",
			Help: "Total number of fallback cache misses",
		},
	)

	// FallbackErrors tracks fallback cache operation errors.
	FallbackErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_fallback_cache_errors_total",
			Help: "Total number of fallback cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
