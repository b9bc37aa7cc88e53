package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSearch(t *testing.T) {
	m := New()
	m.ObserveSearch("centre", "search", 12*time.Millisecond, nil)
	m.ObserveSearch("centre", "search", 3*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchOpsTotal.WithLabelValues("centre", "search", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searchOpsTotal.WithLabelValues("centre", "search", "error")))
}

func TestMiddlewareLabelsByRoute(t *testing.T) {
	m := New()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/regions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Middleware(mux)

	for _, id := range []string{"1", "2", "3"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/regions/"+id, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "GET /api/regions/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "GET /health", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="GET /health",status_code="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSearch("x", "count", time.Second, nil)
		m.ObserveRequest("GET", "/", 200, time.Second)
	})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	assert.NotNil(t, m.Middleware(next))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
