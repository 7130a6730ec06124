package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"settlement/internal/handlers/rest/dto"
)

// Middleware после начала остановки отвечает 503 на новые запросы.
// Проводки, которые уже внутри обработчика, доезжают до коммита.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.Error{Error: "service is shutting down"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
