// Package metrics defines and registers all custom Prometheus metrics for
// the devmarket API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devmarket"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts successfully registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfileUpsertsTotal counts profile create-or-update operations.
var ProfileUpsertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_upserts_total",
		Help:      "Total number of profile upserts.",
	},
)

// ExperienceMutationsTotal counts experience list changes.
// Label:
//   - op: "add" or "remove"
var ExperienceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "experience_mutations_total",
		Help:      "Total number of experience entries added or removed.",
	},
	[]string{"op"},
)

// DirectoryCacheTotal counts profile directory cache lookups.
// Label:
//   - result: "hit" or "miss"
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of profile directory cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingOpsTotal counts listing mutations.
// Label:
//   - op: "create", "update", or "delete"
var ListingOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_ops_total",
		Help:      "Total number of listing mutations, labelled by operation.",
	},
	[]string{"op"},
)
