// Package observability holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tarikh"

// Metrics groups every collector exported by the service.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	transitions     *prometheus.CounterVec
	pointsAwarded   *prometheus.CounterVec
	badgesUnlocked  prometheus.Counter
	bookmarkToggles *prometheus.CounterVec
	linkRequests    *prometheus.CounterVec
	cacheErrors     *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "transitions_total",
			Help:      "Moderation decisions by item kind and outcome (approved, rejected, noop).",
		}, []string{"kind", "outcome"}),
		pointsAwarded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reputation",
			Name:      "points_awarded_total",
			Help:      "Points granted by award reason.",
		}, []string{"reason"}),
		badgesUnlocked: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reputation",
			Name:      "badges_unlocked_total",
			Help:      "Badges granted.",
		}),
		bookmarkToggles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bookmarks",
			Name:      "toggles_total",
			Help:      "Bookmark toggles by resulting action.",
		}, []string{"action"}),
		linkRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "links",
			Name:      "requests_total",
			Help:      "Link requests by result (created, existing).",
		}, []string{"result"}),
		cacheErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "errors_total",
			Help:      "Failed cache operations by operation name.",
		}, []string{"op"}),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Transition records a moderation decision.
func (m *Metrics) Transition(kind, outcome string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(kind, outcome).Inc()
}

// PointsAwarded records granted points and unlocked badges.
func (m *Metrics) PointsAwarded(reason string, delta int64, badges int) {
	if m == nil {
		return
	}
	m.pointsAwarded.WithLabelValues(reason).Add(float64(delta))
	m.badgesUnlocked.Add(float64(badges))
}

// BookmarkToggled records a toggle result.
func (m *Metrics) BookmarkToggled(action string) {
	if m == nil {
		return
	}
	m.bookmarkToggles.WithLabelValues(action).Inc()
}

// LinkRequested records a link request result.
func (m *Metrics) LinkRequested(created bool) {
	if m == nil {
		return
	}
	result := "existing"
	if created {
		result = "created"
	}
	m.linkRequests.WithLabelValues(result).Inc()
}

// CacheError records a failed cache operation.
func (m *Metrics) CacheError(op string) {
	if m == nil {
		return
	}
	m.cacheErrors.WithLabelValues(op).Inc()
}
