// Package metrics defines and registers all custom Prometheus metrics for the
// user service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init via
// promauto and exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_service"

// Cache lookup results.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheLookupsTotal counts cache reads issued by the record service.
// Labels:
//   - operation: "create" or "get"
//   - result: "hit", "miss", or "error" (errors are then treated as misses)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of cache lookups, by operation and result.",
	},
	[]string{"operation", "result"},
)

// CacheWriteErrorsTotal counts cache writes that failed and were skipped.
var CacheWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_write_errors_total",
		Help:      "Total number of failed cache writes.",
	},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreFallbacksTotal counts reads that missed the cache and went to the store.
// Label:
//   - result: "found" or "not_found"
var StoreFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_fallbacks_total",
		Help:      "Total number of GetUser calls served by the durable store.",
	},
	[]string{"result"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UsersCreatedTotal counts successfully created users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// DuplicateRejectionsTotal counts CreateUser calls rejected as duplicates.
// Label:
//   - detected_by: "cache", "store", or "insert_race"
var DuplicateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_rejections_total",
		Help:      "Total number of CreateUser calls rejected because the id already exists.",
	},
	[]string{"detected_by"},
)
