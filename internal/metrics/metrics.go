package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"strconv"
	"time"
)

const namespace = "tinsig"

// Metrics bundles the Prometheus collectors of the API on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	MatchedRecords  *prometheus.HistogramVec
}

// New creates and registers a fresh set of collectors, including the Go runtime and process collectors
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
			[]string{"route"},
		),
		MatchedRecords: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dataset_matched_records",
				Help:      "Number of records matching the filter of a dataset request",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
			},
			[]string{"dataset"},
		),
	}
}

// ObserveRequest records a finished HTTP request
func (metrics *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveMatched records the amount of records a dataset filter matched
func (metrics *Metrics) ObserveMatched(dataset string, n int) {
	metrics.MatchedRecords.WithLabelValues(dataset).Observe(float64(n))
}

// Handler returns the HTTP handler exposing the registry
func (metrics *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})
}
