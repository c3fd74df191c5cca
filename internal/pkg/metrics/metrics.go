// Package metrics defines the custom Prometheus metrics for the TicketFlow
// authorization core. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; the /metrics endpoint exposes them alongside the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketflow"

// ── Authentication ────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts that reached credential checking.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginRateLimitedTotal counts login attempts rejected by the rate limiter.
var LoginRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_rate_limited_total",
		Help:      "Total number of login attempts rejected by the rate limiter.",
	},
)

// ── Authorization ─────────────────────────────────────────────────────────────

// AuthDecisionsTotal counts API authorization outcomes.
// Label:
//   - outcome: "allowed", "unauthenticated", or "forbidden"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of API authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// GateRedirectsTotal counts navigation redirects issued by the route gate.
// Label:
//   - reason: "login_required", "forbidden_route", or "already_authenticated"
var GateRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_redirects_total",
		Help:      "Total number of page navigations redirected by the route gate.",
	},
	[]string{"reason"},
)

// ── Audit trail ───────────────────────────────────────────────────────────────

// AuditQueueDepth tracks records waiting to be written.
var AuditQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records waiting to be persisted.",
	},
)

// AuditRecordsTotal counts audit records by delivery result.
// Label:
//   - result: "written", "failed", or "dropped" (queue full)
var AuditRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_records_total",
		Help:      "Total number of audit records, by delivery result.",
	},
	[]string{"result"},
)
