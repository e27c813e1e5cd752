// Package metrics defines the custom Prometheus metrics of the event portal
// API. Metrics are registered with the default registry on package init via
// promauto and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: the matched route template (e.g. "/events/:id")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// AuthorizationDeniedTotal counts rejected requests.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests rejected by authentication or the policy table.",
	},
	[]string{"reason"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// EventsCreatedTotal counts newly published events.
// Label:
//   - category: the event category (e.g. "academic")
var EventsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created, by category.",
	},
	[]string{"category"},
)

// InquiryTransitionsTotal counts inquiry lifecycle changes.
// Label:
//   - transition: "created" or "resolved"
var InquiryTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiry_transitions_total",
		Help:      "Total number of inquiry submissions and resolutions.",
	},
	[]string{"transition"},
)

// UploadsTotal counts event image uploads.
// Label:
//   - result: "stored", "rejected" or "failed"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of event image uploads, by result.",
	},
	[]string{"result"},
)
