// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

var (
	// HTTPRequests counts handled requests.
	// Labels: method, route (chi route pattern), status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests handled",
	}, []string{"method", "route", "status"})

	// HTTPDuration measures request latency.
	// Labels: method, route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ContactSubmissions counts contact pipeline outcomes.
	// Labels: outcome (accepted, invalid, store_error)
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact submissions by outcome",
	}, []string{"outcome"})

	// EmailsSent counts notification delivery attempts.
	// Labels: kind (internal, confirmation), status (sent, failed)
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "email",
		Name:      "sent_total",
		Help:      "Notification emails by kind and delivery status",
	}, []string{"kind", "status"})

	// EmailDuration measures a single delivery attempt.
	// Labels: kind
	EmailDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "email",
		Name:      "send_duration_seconds",
		Help:      "Time spent delivering one notification email",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"kind"})

	// RateLimited counts requests rejected by the per-IP limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter",
	})

	// ImagesStored counts project images written to storage.
	// Labels: driver (local, gcs)
	ImagesStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "images_stored_total",
		Help:      "Project images written to storage",
	}, []string{"driver"})
)

const (
	OutcomeAccepted   = "accepted"
	OutcomeInvalid    = "invalid"
	OutcomeStoreError = "store_error"

	EmailInternal     = "internal"
	EmailConfirmation = "confirmation"

	StatusSent   = "sent"
	StatusFailed = "failed"
)
