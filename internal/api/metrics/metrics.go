// Package metrics defines and registers all custom Prometheus metrics for the
// job portal API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobportal"

// SignupsTotal counts successfully created accounts.
// Label:
//   - role: "seeker" or "recruiter"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by kind.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: "seeker" or "recruiter"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by kind and result.",
	},
	[]string{"role", "result"},
)

// AuthRejectionsTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "missing_token", "invalid_token", or "role_mismatch"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth or role gates.",
	},
	[]string{"reason"},
)

// JobsCreatedTotal counts postings created by recruiters.
// Label:
//   - job_type: "Full-time", "Part-time", "Contract", or "Internship"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by job type.",
	},
	[]string{"job_type"},
)

// ApplicationsSubmittedTotal counts applications successfully submitted.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

// ApplicationTransitionsTotal counts application status transitions applied
// by recruiters.
// Label:
//   - status: the new status ("under_review", "accepted", "rejected")
var ApplicationTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_transitions_total",
		Help:      "Total number of application status transitions, by target status.",
	},
	[]string{"status"},
)
