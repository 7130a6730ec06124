package metrics

import (
	"net/http"
	"strconv"
	"time"

	"settlement/pkg/logger"
)

// quietRoutes дёргаются пробами и прометеем, в лог их не пишем, метрики считаем.
var quietRoutes = map[string]struct{}{
	"/metrics":     {},
	"/healthcheck": {},
	"/ping":        {},
}

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			route := RouteTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()

			if _, ok := quietRoutes[route]; ok {
				return
			}

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warn("HTTP request failed")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
