package supplier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "supplier",
			Name:      "requests_total",
			Help:      "Supplier API requests by endpoint and HTTP status.",
		},
		[]string{"endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "supplier",
			Name:      "request_duration_seconds",
			Help:      "Supplier API request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	rateLimitRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "supplier",
			Name:      "rate_limit_retries_total",
			Help:      "Retries caused by supplier rate limiting.",
		},
		[]string{"endpoint"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pod_fulfillment",
			Subsystem: "supplier",
			Name:      "catalog_cache_lookups_total",
			Help:      "Catalog cache lookups by result.",
		},
		[]string{"result"},
	)
)
