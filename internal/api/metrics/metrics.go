// Package metrics defines and registers the custom Prometheus metrics of the
// marketplace. It is the single source of truth for metric names, labels and
// help strings. HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

const namespace = "marketplace"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreOperationsTotal counts applied store mutations.
// Labels:
//   - op: the store operation (e.g. "add_item", "send_message")
//   - persisted: "true" when the snapshot write succeeded
var StoreOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Total number of applied store mutations.",
	},
	[]string{"op", "persisted"},
)

// SnapshotSaveFailuresTotal counts mutations whose snapshot could not be written.
var SnapshotSaveFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_save_failures_total",
		Help:      "Total number of snapshot writes that failed after a mutation.",
	},
)

// ── Marketplace metrics ───────────────────────────────────────────────────────

// ListingsCreatedTotal counts listings submitted for moderation.
// Label:
//   - category: "knife" or "watch"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings submitted, by category.",
	},
	[]string{"category"},
)

// ModerationDecisionsTotal counts status changes made by moderators.
// Label:
//   - status: the status applied
var ModerationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_decisions_total",
		Help:      "Total number of moderation status changes, by resulting status.",
	},
	[]string{"status"},
)

// EventSubscribers tracks the number of open change-feed connections.
var EventSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "event_subscribers",
		Help:      "Current number of connected change-feed clients.",
	},
)

// Observe records one store change.
func Observe(change ports.Change) {
	StoreOperationsTotal.WithLabelValues(change.Op, strconv.FormatBool(change.Persisted)).Inc()
	if !change.Persisted {
		SnapshotSaveFailuresTotal.Inc()
	}
}

// Track subscribes Observe to store changes and returns the unsubscribe func.
func Track(store ports.Store) func() {
	return store.Subscribe(Observe)
}
