package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Orders accepted after payment confirmation.",
		},
	)

	fulfillmentOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "orders",
			Name:      "fulfillment_total",
			Help:      "Supplier submission outcomes (submitted, failed, unresolved).",
		},
		[]string{"outcome"},
	)

	refundOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "orders",
			Name:      "refunds_total",
			Help:      "Compensating refunds by outcome.",
		},
		[]string{"outcome"},
	)

	mockupJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "mockups",
			Name:      "jobs_total",
			Help:      "Mockup job submissions by outcome.",
		},
		[]string{"outcome"},
	)

	mockupPolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "mockups",
			Name:      "polls_total",
			Help:      "Mockup polling results by terminal outcome.",
		},
		[]string{"outcome"},
	)

	mockupPollAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "mockups",
			Name:      "poll_attempts",
			Help:      "Status queries needed to reach a terminal mockup state.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 30},
		},
	)
)
