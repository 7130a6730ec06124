package order_delete

import (
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

// ServeHTTP удаляет заказ. Проведённые суммы откатываются в той же транзакции.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	err = h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", id),
			).Error("delete order")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
