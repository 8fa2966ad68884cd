// Package metrics defines and registers all custom Prometheus metrics for the
// commerce platform. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package load and are exposed via each service's /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Identity metrics ──────────────────────────────────────────────────────────

// TokensIssuedTotal counts tokens minted by successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// TokenVerificationsTotal counts verify calls by outcome.
// Label:
//   - result: "valid" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, labelled by result.",
	},
	[]string{"result"},
)

// GateFailuresTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "missing_token", "invalid_token", or "not_employee"
var GateFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_failures_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"reason"},
)

// ── Orchestration metrics ─────────────────────────────────────────────────────

// OrdersPricedTotal counts order pricing attempts by outcome.
// Label:
//   - result: "priced" or "rejected"
var OrdersPricedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_priced_total",
		Help:      "Total number of order pricing requests, labelled by result.",
	},
	[]string{"result"},
)

// SearchesTotal counts search requests by outcome.
// Label:
//   - result: "resolved" or "rejected"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of search requests, labelled by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts recorded audit events by event name.
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events recorded, labelled by event.",
	},
	[]string{"event"},
)

// LastModCacheTotal counts last-modifier cache lookups.
// Label:
//   - result: "hit" or "miss"
var LastModCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "last_mod_cache_total",
		Help:      "Total number of last-modifier cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
