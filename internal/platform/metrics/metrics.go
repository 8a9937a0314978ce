// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "showcase"

// Recorder owns a private registry so tests can build as many as they like.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	publishOutcomes  *prometheus.CounterVec
	warehouseLookups *prometheus.HistogramVec
}

// NewRecorder creates and registers all collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route"},
		),
		publishOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "publish",
				Name:      "outcomes_total",
				Help:      "Publish requests by classified outcome.",
			},
			[]string{"category"},
		),
		warehouseLookups: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "warehouse",
				Name:      "lookup_duration_seconds",
				Help:      "Duration of warehouse item lookups.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"outcome"},
		),
	}

	r.registry.MustRegister(
		r.httpRequests,
		r.httpDuration,
		r.publishOutcomes,
		r.warehouseLookups,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return r
}

// Handler returns an HTTP handler exposing the registered collectors.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one completed request. route should be the
// router pattern, not the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObservePublish counts a publish request by its classified category.
func (r *Recorder) ObservePublish(category string) {
	r.publishOutcomes.WithLabelValues(category).Inc()
}

// ObserveWarehouseLookup records the latency of one resolver call.
func (r *Recorder) ObserveWarehouseLookup(outcome string, duration time.Duration) {
	r.warehouseLookups.WithLabelValues(outcome).Observe(duration.Seconds())
}
