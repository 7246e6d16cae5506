// Package metrics defines and registers all custom Prometheus metrics for the
// CRAS appointment API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cras"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateDenialsTotal counts requests refused by the page gate.
// Label:
//   - page: the page the route belongs to (e.g. "users")
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denials_total",
		Help:      "Total number of requests refused by the page gate.",
	},
	[]string{"page"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts newly created appointments.
// Label:
//   - reason: the appointment reason as stored (e.g. "DENÚNCIA")
var AppointmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created, by reason.",
	},
	[]string{"reason"},
)

// AppointmentUpdatesTotal counts appointment updates.
// Label:
//   - status: the status carried by the update
var AppointmentUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_updates_total",
		Help:      "Total number of appointment updates, by resulting status.",
	},
	[]string{"status"},
)

// UserChangesTotal counts changes to staff accounts.
// Label:
//   - operation: "create", "update" or "delete"
var UserChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_changes_total",
		Help:      "Total number of user account changes, by operation.",
	},
	[]string{"operation"},
)

// ── Extraction metrics ────────────────────────────────────────────────────────

// ExtractionsTotal counts document extraction requests.
// Label:
//   - result: "success", "unsupported", "unavailable" or "failed"
var ExtractionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Total number of document extraction requests, by result.",
	},
	[]string{"result"},
)

// ExtractionDuration measures the round trip to the extraction collaborator.
var ExtractionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Duration of document extraction requests.",
		Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32},
	},
)
