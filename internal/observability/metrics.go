package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "geo_lookup"

// Metrics holds the Prometheus collectors for the geocoding client, the
// lookup pipeline and the HTTP API.
type Metrics struct {
	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec   // labels: operation={info,lnglat,reverse,reverse_all}, outcome={success,empty,error}
	GeocodeAPIDuration *prometheus.HistogramVec // labels: operation
	PlacemarksReturned prometheus.Histogram

	// Pipeline metrics.
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	ResolveErrors    prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// HTTP API metrics.
	HTTPRequests *prometheus.CounterVec // labels: route, status
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates all metrics and registers them with reg.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.GeocodeRequests,
		m.GeocodeAPIDuration,
		m.PlacemarksReturned,
		m.MessagesConsumed,
		m.MessagesProduced,
		m.ResolveErrors,
		m.PipelineRunning,
		m.HTTPRequests,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid "already
// registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		GeocodeAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      "Geocoding provider round-trip duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"operation"}),
		PlacemarksReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "placemarks_returned",
			Help:      "Number of placemarks per provider response.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		}),
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total lookup requests read from the request topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total lookup results written to the result topic.",
		}),
		ResolveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolve_errors_total",
			Help:      "Total lookup requests that could not be decoded.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the lookup pipeline is active, 0 when shut down.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP API requests by route and status code.",
		}, []string{"route", "status"}),
	}
}
