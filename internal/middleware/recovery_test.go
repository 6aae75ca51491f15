package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xqfit/routines/internal/telemetry/metrics"

	"github.com/stretchr/testify/assert"
)

func TestPanicRecovery(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("oops")
	})
	wrapped := PanicRecovery(metricsManager)(panicky)

	req := httptest.NewRequest(http.MethodGet, "/routines", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		wrapped.ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestMetrics_StatusCodePassedThrough(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	wrapped := RequestMetrics(metricsManager)(teapot)

	req := httptest.NewRequest(http.MethodGet, "/routines", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
