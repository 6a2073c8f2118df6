// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: content load cycles, rendering, and HTTP requests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "folio"
)

var (
	// Content metrics - track load cycles over the content source
	LoadCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "load_cycles_total",
			Help:      "Total number of content load cycles by result",
		},
		[]string{"result"},
	)

	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "load_duration_seconds",
			Help:      "Duration of a full load cycle in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	PostsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "posts_indexed",
			Help:      "Number of posts in the currently published index",
		},
	)

	DocumentsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "documents_rejected_total",
			Help:      "Total number of documents skipped during load cycles by reason",
		},
		[]string{"reason"},
	)

	// Render metrics - track markdown conversion on detail views
	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Markdown render duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
		},
	)

	RenderCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "cache_lookups_total",
			Help:      "Render cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)
)

// ObserveLoadCycle records the outcome of one load cycle.
func ObserveLoadCycle(err error, duration time.Duration, posts int) {
	if err != nil {
		LoadCyclesTotal.WithLabelValues("failure").Inc()
		return
	}
	LoadCyclesTotal.WithLabelValues("success").Inc()
	LoadDuration.Observe(duration.Seconds())
	PostsIndexed.Set(float64(posts))
}

// ObserveRenderCache records a render cache hit or miss.
func ObserveRenderCache(hit bool) {
	if hit {
		RenderCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	RenderCacheLookups.WithLabelValues("miss").Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer was created.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}
