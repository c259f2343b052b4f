// Package metrics defines the custom Prometheus metrics of the newsroom API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry on package init via
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsroom"

// ── Article metrics ───────────────────────────────────────────────────────────

// ArticlesSubmittedTotal counts accepted submissions.
// Label:
//   - category: the category supplied by the publisher
var ArticlesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_submitted_total",
		Help:      "Total number of articles submitted for moderation, by category.",
	},
	[]string{"category"},
)

// ArticlesApprovedTotal counts successful approve calls, including repeats on
// an already approved article.
var ArticlesApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_approved_total",
		Help:      "Total number of successful article approvals.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts bearer tokens handed out by /token.
// Label:
//   - role: "user" or "admin"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by role.",
	},
	[]string{"role"},
)

// LoginFailuresTotal counts rejected logins.
// Label:
//   - reason: "unknown_user" or "bad_password"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected token requests, by reason.",
	},
	[]string{"reason"},
)
