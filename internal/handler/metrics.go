package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pod_fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "supplier_events_processed_total",
		Help:      "Total number of successfully applied supplier events",
	}, []string{"type"})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pod_fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "supplier_events_failed_total",
		Help:      "Total number of failed supplier event processing attempts",
	})

	eventsDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pod_fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "supplier_events_dlq_total",
		Help:      "Total number of supplier events written to DLQ",
	})

	commitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pod_fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "commit_errors_total",
		Help:      "Total number of Kafka commit errors",
	})

	eventProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pod_fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "supplier_event_processing_duration_seconds",
		Help:      "Histogram of supplier event processing durations in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	eventsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "pod_fulfillment",
		Subsystem: "kafka_consumer",
		Name:      "supplier_events_in_progress",
		Help:      "Number of supplier events currently being processed",
	})
)
