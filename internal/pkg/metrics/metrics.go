package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path pattern and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kawkaw_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by method and path pattern
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kawkaw_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ModerationFailures counts moderation calls absorbed by the fail-open policy
	ModerationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kawkaw_moderation_failures_total",
		Help: "Total number of failed moderation calls (failed open).",
	})

	// ReviewsSubmitted counts accepted review submissions
	ReviewsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kawkaw_reviews_submitted_total",
		Help: "Total number of reviews accepted and persisted.",
	})

	// ReviewsRejected counts rejected submissions by reason
	ReviewsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kawkaw_reviews_rejected_total",
		Help: "Total number of rejected review submissions.",
	}, []string{"reason"})
)
