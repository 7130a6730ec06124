package ledger_correction_post

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

// ServeHTTP ручная корректировка по контрагенту. Единственный способ поправить
// заказ внутри оплаченной клиентской выписки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var correctionDTO dto.Correction
	err := json.NewDecoder(r.Body).Decode(&correctionDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	correction, err := correctionDTO.ToEntity()
	if err != nil {
		dto.WriteError(w, err)
		return
	}

	entry, err := h.service.PostCorrection(r.Context(), correction)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("party", correction.Party.String()),
			).Error("post correction")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationCorrection).Inc()
	h.log.With(
		logger.NewField("entry_id", entry.ID),
		logger.NewField("party", correction.Party.String()),
		logger.NewField("amount", correction.Amount.String()),
	).Info("correction posted")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.LedgerEntryFromEntity(entry))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
