package accounting_record_post

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
	var recordDTO dto.AccountingRecord
	err := json.NewDecoder(r.Body).Decode(&recordDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	record, err := recordDTO.ToEntity()
	if err != nil {
		dto.WriteError(w, err)
		return
	}

	entry, err := h.service.RecordAccounting(r.Context(), record)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("category", recordDTO.Category),
			).Error("record accounting")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationAccounting).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.LedgerEntryFromEntity(entry))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
