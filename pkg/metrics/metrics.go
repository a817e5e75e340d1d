// Package metrics provides the centralized Prometheus registry for the
// OHPM crawler. All metrics are defined in their respective packages
// (registry, crawler, store) via promauto to keep them next to the
// code they observe.
//
// This package documents the available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the crawler.
// All metrics register automatically via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Registry Client Metrics (pkg/registry):
//   - ohpm_registry_requests_total{status} (Counter): Search requests by HTTP status
//   - ohpm_registry_request_duration_seconds (Histogram): Search request duration
//   - ohpm_registry_errors_total{class} (Counter): Errors by class (client, server, network, decode)
//   - ohpm_registry_retries_total{error_class} (Counter): Retry attempts by error class
//   - ohpm_registry_retry_exhausted_total{error_class} (Counter): Requests that exhausted retries
//
// Crawl Metrics (pkg/crawler):
//   - ohpm_crawl_pages_total{outcome} (Counter): Pages processed, outcome success|failure
//   - ohpm_crawl_duration_seconds (Histogram): Complete crawl run duration
//   - ohpm_crawl_packages_collected (Gauge): Packages collected by the latest crawl
//
// Store Metrics (pkg/store):
//   - ohpm_store_operations_total{operation, result} (Counter): Snapshot save/load operations
//   - ohpm_store_snapshot_bytes (Gauge): Size of the most recently saved snapshot
//
// Example Prometheus Queries:
//
//   # Page failure rate of the current crawl
//   rate(ohpm_crawl_pages_total{outcome="failure"}[5m]) /
//   rate(ohpm_crawl_pages_total[5m])
//
//   # P95 search request latency
//   histogram_quantile(0.95, rate(ohpm_registry_request_duration_seconds_bucket[5m]))
//
//   # Retry pressure by error class
//   rate(ohpm_registry_retries_total[5m])
