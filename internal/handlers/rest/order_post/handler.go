package order_post

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	newOrder, err := orderCreateDTO.ToEntity()
	if err != nil {
		dto.WriteError(w, err)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), newOrder)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
