package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/pkg/metrics"
)

// statusWriter запоминает код ответа для метрик
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов: счетчик и
// длительность по методу, шаблону маршрута и коду ответа
func MetricsMiddleware(collector *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			// Шаблон маршрута вместо сырого пути, чтобы не раздувать
			// кардинальность метрик
			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			collector.ObserveHTTPRequest(r.Method, path, strconv.Itoa(sw.status), time.Since(start))
		})
	}
}
