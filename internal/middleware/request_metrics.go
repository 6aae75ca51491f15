package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/xqfit/routines/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{respWriter, http.StatusOK}
			begin := time.Now()

			// handler call
			next.ServeHTTP(resp, req)

			route := req.URL.Path
			if current := mux.CurrentRoute(req); current != nil {
				if pathTemplate, err := current.GetPathTemplate(); err == nil {
					route = pathTemplate
				}
			}

			metricsManager.HistogramRequestDuration.
				WithLabelValues(route, req.Method, strconv.Itoa(resp.statusCode)).
				Observe(time.Since(begin).Seconds())
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
