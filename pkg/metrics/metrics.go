// Package metrics provides the centralized Prometheus metrics reference for
// the connector library. All metrics are defined in their respective packages
// (client, cache, objcache) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the connector library.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - connector_requests_total{method, status} (Counter): Requests by method and HTTP status
//     (status "transport_error" counts requests that got no response)
//   - connector_request_duration_seconds{method} (Histogram): Request duration by method
//   - connector_request_errors_total{class} (Counter): Errors by class
//     (network, redirect_loop, client, server)
//
// Fallback Cache Metrics (pkg/cache):
//   - connector_fallback_cache_hits_total (Counter): Responses served from the fallback cache
//   - connector_fallback_cache_misses_total (Counter): Fallback cache misses
//   - connector_fallback_cache_errors_total{operation} (Counter): Cache operation errors
//
// Object Cache Metrics (pkg/objcache):
//   - connector_object_cache_hits_total{tier} (Counter): Hits by tier (memory, store)
//   - connector_object_cache_misses_total (Counter): Object cache misses
//   - connector_object_cache_errors_total{operation} (Counter): Store operation errors
//
// Example Prometheus Queries:
//
//   # Fallback cache hit rate
//   rate(connector_fallback_cache_hits_total[5m]) /
//   (rate(connector_fallback_cache_hits_total[5m]) + rate(connector_fallback_cache_misses_total[5m]))
//
//   # Request error rate
//   rate(connector_request_errors_total[5m])
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(connector_request_duration_seconds_bucket[5m]))
