package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	db             pinger
}

func New(isShuttingDown *atomic.Bool, db pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

// ServeHTTP 503 во время остановки или когда база не отвечает: без неё ни одна
// расчётная операция не пройдёт.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
