package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/kol-dashboard-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições por método e status
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			m.ObserveRequest(r.Method, lrw.statusCode, time.Since(startTime).Seconds())
		})
	}
}
