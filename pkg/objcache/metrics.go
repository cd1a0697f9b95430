package objcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hits tracks object cache hits by tier (memory, store).
	Hits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_object_cache_hits_total",
			Help: "Total number of object cache hits",
		},
		[]string{"tier"}, // "memory", "store"
	)

	// Misses tracks object cache misses.
	Misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "connector_object_cache_misses_total",
			Help: "Total number of object cache misses",
		},
	)

	// Errors tracks object cache store errors by operation.
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_object_cache_errors_total",
			Help: "Total number of object cache store errors",
		},
		[]string{"operation"}, // "get", "set", "delete", "flush_tag"
	)
)
