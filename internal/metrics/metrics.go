package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the ODR Lab API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Workflow Metrics
	IdeasSubmittedTotal      prometheus.Counter
	ModerationDecisionsTotal prometheus.CounterVec
	CommentsPostedTotal      prometheus.Counter
	LikeTogglesTotal         prometheus.CounterVec
	MeetingTokensIssuedTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odrlab_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "odrlab_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "odrlab_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		IdeasSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "odrlab_ideas_submitted_total",
				Help: "Total idea submissions accepted into the moderation queue",
			},
		),
		ModerationDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odrlab_moderation_decisions_total",
				Help: "Moderation decisions by outcome (approved, rejected)",
			},
			[]string{"outcome"},
		),
		CommentsPostedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "odrlab_comments_posted_total",
				Help: "Total comments posted across all ideas",
			},
		),
		LikeTogglesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odrlab_like_toggles_total",
				Help: "Like toggles by target (idea, comment) and result (liked, unliked)",
			},
			[]string{"target", "result"},
		),
		MeetingTokensIssuedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "odrlab_meeting_tokens_issued_total",
				Help: "Signed JaaS meeting tokens issued",
			},
		),
	}
}
