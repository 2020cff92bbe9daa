// Package metrics exposes Prometheus counters for the planning passes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubscriptionsProcessed counts generation units by outcome
	// (processed, skipped, failed).
	SubscriptionsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planning",
		Name:      "subscriptions_processed_total",
		Help:      "Subscriptions handled by the order generator, by outcome.",
	}, []string{"outcome"})

	// OrdersGenerated counts orders inserted by the generator.
	OrdersGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "planning",
		Name:      "orders_generated_total",
		Help:      "Orders created from subscriptions.",
	})

	// OrdersAssigned counts assignment-engine outcomes (assigned, failed).
	OrdersAssigned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planning",
		Name:      "orders_assigned_total",
		Help:      "Orders processed by the assignment engine, by outcome.",
	}, []string{"outcome"})

	// JobRuns counts scheduled job executions by job name.
	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planning",
		Name:      "job_runs_total",
		Help:      "Scheduled planning job executions.",
	}, []string{"job"})
)
