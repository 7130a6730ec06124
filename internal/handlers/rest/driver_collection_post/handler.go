package driver_collection_post

import (
	"encoding/json"
	"net/http"

	"settlement/internal/handlers/rest/dto"
	"settlement/internal/pkg/metrics"
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

// ServeHTTP принимает наличные водителя по списку заказов. Всё или ничего: при
// ошибке по любому заказу не записывается ни одна проводка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	var collectionDTO dto.DriverCollectionRequest
	err = json.NewDecoder(r.Body).Decode(&collectionDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	collection, err := h.service.CollectFromDriver(r.Context(), driverID, collectionDTO.OrderIDs)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("driver_id", driverID),
				logger.NewField("orders", len(collectionDTO.OrderIDs)),
			).Error("collect from driver")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationCollection).Inc()
	metrics.SettlementOrdersTotal.WithLabelValues(metrics.OperationCollection).Add(float64(len(collectionDTO.OrderIDs)))
	h.log.With(
		logger.NewField("driver_id", driverID),
		logger.NewField("orders", len(collectionDTO.OrderIDs)),
		logger.NewField("cash_in", collection.CashIn.String()),
		logger.NewField("cash_out", collection.CashOut.String()),
	).Info("driver cash collected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.DriverCollectionFromEntity(collection))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
