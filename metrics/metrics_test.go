package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/menu_:restaurantId", "200", 0.01)
	m.ObserveRequest("GET", "/menu_:restaurantId", "200", 0.02)
	m.ObserveRequest("GET", "/menu_:restaurantId", "404", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/menu_:restaurantId", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/menu_:restaurantId", "404")))
}

func TestObserveTenantLookup(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveTenantLookup(TenantFound)
	m.ObserveTenantLookup(TenantMissing)
	m.ObserveTenantLookup(TenantMissing)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TenantLookups.WithLabelValues(TenantFound)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TenantLookups.WithLabelValues(TenantMissing)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", "200", 0)
		m.ObserveTenantLookup(TenantError)
	})
}
