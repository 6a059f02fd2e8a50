// Package metrics defines and registers all custom Prometheus metrics for the
// PlanVenture API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init; the /metrics endpoint and HTTP-level request metrics are wired by the
// router via echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planventure"

// AuthRegistrationsTotal counts successfully created accounts.
var AuthRegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of user accounts registered.",
	},
)

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (bad password and unknown email alike)
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TripsCreatedTotal counts newly created trips.
var TripsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_created_total",
		Help:      "Total number of trips created.",
	},
)

// TripOperationDuration measures how long trip mutations take end-to-end in
// the service layer, including validation and persistence.
// Label:
//   - operation: "create", "update", or "delete"
var TripOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trip_operation_duration_seconds",
		Help:      "Duration of trip mutations from validation to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)
