package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware counts HTTP requests by method, route and status.
type MetricsMiddleware struct {
	requestCount *prometheus.CounterVec
}

func NewMetricsMiddleware(reg prometheus.Registerer) (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(m.requestCount); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Exclude /metrics from being counted
		if req.URL.Path == "/metrics" {
			next.ServeHTTP(w, req)
			return
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)

		// Use the route template (e.g. /doctors/{id}) to keep cardinality low
		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		m.requestCount.WithLabelValues(
			req.Method,
			path,
			strconv.Itoa(recorder.status),
		).Inc()
	})
}
