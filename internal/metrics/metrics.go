// Package metrics holds the Prometheus collectors of the service. They are
// registered on the default registry and exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "neurohus"

var (
	// HTTPRequests counts handled requests.
	// Labels: method, route (gin full path), status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration measures request latency by route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "awards",
			Name:      "votes_cast_total",
			Help:      "Accepted votes per award",
		},
		[]string{"award"},
	)

	// VotesRejected labels: reason (not_found, window_closed, duplicate).
	VotesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "awards",
			Name:      "votes_rejected_total",
			Help:      "Rejected vote attempts by reason",
		},
		[]string{"reason"},
	)

	NominationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "awards",
			Name:      "nominations_created_total",
			Help:      "Nominations created per award",
		},
		[]string{"award"},
	)

	CoursesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "academy",
			Name:      "courses_completed_total",
			Help:      "Courses finished with a full quiz score",
		},
	)

	ForumReplies = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "community",
			Name:      "replies_total",
			Help:      "Forum replies created",
		},
	)

	LiveSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "community",
			Name:      "live_subscribers",
			Help:      "Open websocket subscriptions to forum threads",
		},
	)

	DatasetDownloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lab",
			Name:      "dataset_downloads_total",
			Help:      "Dataset downloads per dataset",
		},
		[]string{"dataset"},
	)

	// ModerationDecisions labels: approved (true, false).
	ModerationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "moderation_decisions_total",
			Help:      "Text moderation outcomes",
		},
		[]string{"approved"},
	)
)
