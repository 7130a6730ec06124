package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"settlement/internal/handlers/rest/dto"
	"settlement/pkg/logger"
)

type Handler struct {
	log handlerLogger
	day businessDay
}

func New(log handlerLogger, day businessDay) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
		day: day,
	}
}

// ServeHTTP отвечает pong, текущим кассовым днём и поясом, по которому режутся дни.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	res := dto.PingResponse{
		Message:     "pong",
		BusinessDay: h.day.Today().Format(time.DateOnly),
		Timezone:    h.day.Location().String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
