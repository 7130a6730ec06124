package order_put

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

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	orderModify, err := orderUpdateDTO.ToEntity(id)
	if err != nil {
		dto.WriteError(w, err)
		return
	}

	updated, err := h.service.UpdateOrder(r.Context(), orderModify)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", id),
			).Error("update order")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
