package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	jobsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "jobs_completed_total",
			Help:      "Total number of billing jobs that produced an order",
		},
	)

	jobsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "jobs_failed_total",
			Help:      "Total number of failed billing jobs by failure kind",
		},
		[]string{"kind"},
	)

	jobsRetried = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "jobs_redelivery_total",
			Help:      "Total number of jobs left uncommitted for queue redelivery",
		},
	)

	jobsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "jobs_dlq_total",
			Help:      "Total number of jobs written to the DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	reconEvents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "reconciliation_events_total",
			Help:      "Total number of charge-without-order events published",
		},
	)

	jobDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "job_duration_seconds",
			Help:      "Histogram of billing job processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	jobsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "billing_service",
			Subsystem: "worker",
			Name:      "jobs_in_progress",
			Help:      "Number of billing jobs currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		jobsCompleted,
		jobsFailed,
		jobsRetried,
		jobsDLQ,
		commitErrors,
		reconEvents,
		jobDuration,
		jobsInProgress,
	)
}
