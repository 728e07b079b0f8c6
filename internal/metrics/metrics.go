// Package metrics registers the Prometheus collectors of the site.
//
// Collectors live on the default registry and are exposed at /metrics.
// Label values are fixed sets (collection names, outcome words) so
// cardinality stays small.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ContentReadFailuresTotal counts collection reads that degraded to
	// "no data" while resolving site content.
	ContentReadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_read_failures_total",
			Help: "Collection reads that failed during content resolution",
		},
		[]string{"collection"},
	)

	// ContentStaticFallbacksTotal counts resolutions that returned the
	// bundled defaults wholesale after a panic.
	ContentStaticFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_static_fallbacks_total",
			Help: "Content resolutions that fell back to the static defaults",
		},
	)

	// ContentResolveDuration tracks how long the concurrent fan-out takes.
	ContentResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_resolve_duration_seconds",
			Help:    "Duration of content resolution in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// AuthAttemptsTotal counts login attempts by result: success, failure, limited.
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Admin login attempts by result",
		},
		[]string{"result"},
	)

	// BookingsReceivedTotal counts valid booking submissions.
	BookingsReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_received_total",
			Help: "Valid booking requests received",
		},
	)

	// BookingStepFailuresTotal counts best-effort booking steps that failed:
	// persist, publish, email.
	BookingStepFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_step_failures_total",
			Help: "Booking side effects that failed without failing the request",
		},
		[]string{"step"},
	)

	// UploadsTotal counts upload outcomes per media type.
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "File uploads by media type and result",
		},
		[]string{"type", "result"},
	)
)
