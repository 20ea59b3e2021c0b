// Package metrics instruments outbound calls to the weather and geocoding
// upstreams and exposes them for Prometheus scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream names used as the "upstream" label.
const (
	UpstreamGeocoding        = "geocoding"
	UpstreamReverseGeocoding = "reverse_geocoding"
	UpstreamForecast         = "forecast"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	lookups         *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pixel_weather",
			Name:      "upstream_requests_total",
			Help:      "Requests sent to upstream services.",
		}, []string{"upstream", "code", "method"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pixel_weather",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream", "code", "method"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pixel_weather",
			Name:      "lookups_total",
			Help:      "Weather lookups by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.lookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// HTTPClient returns a client whose transport records every request under
// the given upstream label.
func (m *Metrics) HTTPClient(upstream string, timeout time.Duration) *http.Client {
	labels := prometheus.Labels{"upstream": upstream}

	var transport http.RoundTripper = http.DefaultTransport
	transport = promhttp.InstrumentRoundTripperCounter(m.requests.MustCurryWith(labels), transport)
	transport = promhttp.InstrumentRoundTripperDuration(m.requestDuration.MustCurryWith(labels), transport)

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// ObserveLookup counts one orchestrated lookup.
func (m *Metrics) ObserveLookup(kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.lookups.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
