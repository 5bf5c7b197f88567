// Package metrics defines all custom Prometheus metrics for the catalog API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// SignupsTotal counts successful member registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	},
)

// LoginAttemptsTotal counts login attempts.
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

// BooksCreatedTotal counts catalog additions. Deliberately unlabelled:
// genre is a free-form client string and would blow up label cardinality.
var BooksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "Total number of books added to the catalog.",
	},
)

// BooksUpdatedTotal counts full-document book replacements.
var BooksUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_updated_total",
		Help:      "Total number of book updates.",
	},
)

// BooksDeletedTotal counts catalog removals.
var BooksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_deleted_total",
		Help:      "Total number of books removed from the catalog.",
	},
)
