package order_reversal_post

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	result, err := h.service.ReverseOrderSettlement(r.Context(), id)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", id),
			).Error("reverse order settlement")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationReversal).Inc()
	metrics.SettlementOrdersTotal.WithLabelValues(metrics.OperationReversal).Inc()
	h.log.With(
		logger.NewField("order_id", id),
		logger.NewField("removed_entries", len(result.RemovedEntryIDs)),
		logger.NewField("wallet_delta", result.WalletDelta.String()),
	).Info("order settlement reversed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.ReversalFromEntity(result))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
