// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tenant lookup outcomes.
const (
	TenantFound    = "found"
	TenantMissing  = "missing"
	TenantRejected = "rejected"
	TenantError    = "error"
)

// Metrics holds the collectors for one registry. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	TenantLookups *prometheus.CounterVec
}

// New creates the collectors and registers them with registry.
func New(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_api_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "menu_api_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		TenantLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_api_tenant_lookups_total",
				Help: "Menu table resolutions by outcome",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveTenantLookup(result string) {
	if m == nil {
		return
	}
	m.TenantLookups.WithLabelValues(result).Inc()
}
