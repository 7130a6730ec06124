package cashbox_get

import (
	"encoding/json"
	"net/http"

	"settlement/internal/handlers/rest/dto"
	"settlement/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	day, err := dto.PathDate(r, "date")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	cashboxDay, err := h.service.GetDay(r.Context(), day)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("day", day.Format("2006-01-02")),
			).Error("get cashbox day")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.CashboxDayFromEntity(cashboxDay))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
