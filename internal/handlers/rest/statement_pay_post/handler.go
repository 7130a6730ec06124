package statement_pay_post

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

	var payDTO dto.StatementPay
	err = json.NewDecoder(r.Body).Decode(&payDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	statementEntity, err := h.service.MarkPaid(r.Context(), id, payDTO.PaymentMethod, payDTO.Notes)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("statement_id", id),
			).Error("mark statement paid")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationStatementPaid).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.StatementFromEntity(statementEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
