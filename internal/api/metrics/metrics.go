// Package metrics defines all custom Prometheus metrics for the comment
// widget backend. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commentbox"

// ── Admission metrics ─────────────────────────────────────────────────────────

// CommentsAdmittedTotal counts comments that passed every admission gate
// and were persisted.
var CommentsAdmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_admitted_total",
		Help:      "Total number of comments accepted and stored.",
	},
)

// CommentsRejectedTotal counts admission rejections.
// Label:
//   - reason: the gate that rejected ("missing_params", "captcha", "site_not_found", "quota")
var CommentsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_rejected_total",
		Help:      "Total number of comment submissions rejected, by gate.",
	},
	[]string{"reason"},
)

// ── CAPTCHA metrics ───────────────────────────────────────────────────────────

// CaptchaVerificationsTotal counts outbound Turnstile verifications.
// Label:
//   - result: "pass", "fail", or "error" (transport or decode failure; treated as fail by callers)
var CaptchaVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "captcha_verifications_total",
		Help:      "Total number of Turnstile verification calls, by result.",
	},
	[]string{"result"},
)

// ── Provisioning and session metrics ──────────────────────────────────────────

// SitesProvisionedTotal counts sites minted through the public
// apply-code flow.
var SitesProvisionedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sites_provisioned_total",
		Help:      "Total number of self-service sites provisioned.",
	},
)

// SessionsIssuedTotal counts admin session tokens issued.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of admin sessions issued.",
	},
)
