// Package metrics exposes Prometheus collectors for the directory.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storelocator"

// Outcome labels for source fetches.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the directory collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	cacheLookups    *prometheus.CounterVec
	sourceFetches   *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	staleResponses  prometheus.Counter
	cachedLocations prometheus.Gauge
	httpRequests    *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Directory lookups by id, split by cache hit or miss.",
			},
			[]string{"result"},
		),
		sourceFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "fetches_total",
				Help:      "Calls made to the location source.",
			},
			[]string{"operation", "outcome"},
		),
		refreshDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "refresh_duration_seconds",
				Help:      "Duration of full directory refreshes.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
			},
		),
		staleResponses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "stale_responses_total",
				Help:      "Responses served from the last good directory after a failed refresh.",
			},
		),
		cachedLocations: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "locations",
				Help:      "Number of locations currently cached.",
			},
		),
		httpRequests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests by route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.cacheLookups,
		m.sourceFetches,
		m.refreshDuration,
		m.staleResponses,
		m.cachedLocations,
		m.httpRequests,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)

	return m
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) SourceFetch(operation, outcome string) {
	if m == nil {
		return
	}
	m.sourceFetches.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveRefresh(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.refreshDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) StaleResponse() {
	if m == nil {
		return
	}
	m.staleResponses.Inc()
}

func (m *Metrics) SetCachedLocations(n int) {
	if m == nil {
		return
	}
	m.cachedLocations.Set(float64(n))
}

// ObserveRequest records one served HTTP request. route is the registered
// path template, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
