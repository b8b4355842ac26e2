// Package metrics defines the custom Prometheus metrics for the courses API.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courses"

// AuthAttemptsTotal counts Basic-auth outcomes at the middleware.
// Label:
//   - result: "ok", "rejected" (bad credentials), or "malformed" (unusable header)
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of Basic authentication attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// CourseMutationsTotal counts successful course writes.
// Label:
//   - operation: "create", "update", or "delete"
var CourseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_mutations_total",
		Help:      "Total number of successful course mutations, by operation.",
	},
	[]string{"operation"},
)
