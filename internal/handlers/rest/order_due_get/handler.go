package order_due_get

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
	id, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	due, err := h.service.ComputeDue(r.Context(), id)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", id),
			).Error("compute due")
		}
		return
	}

	response := dto.OrderDue{
		OrderID: id,
		Due:     dto.MoneyFromEntity(due),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
