package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.ObserveLoad("csv", LoadSuccess, 0.2)
	m.ObserveLoad("csv", LoadFailure, 0.1)
	m.SetDataset(3, 7, 1)
	m.ObserveRequest(http.MethodGet, http.StatusOK, 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLoads.WithLabelValues("csv", LoadFailure)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.datasetRows.WithLabelValues("activities")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.coercionIssues))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "200")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.CacheMiss()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "kol_dashboard_cache_misses_total 1")
}
