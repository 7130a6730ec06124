package third_party_payout_post

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

// ServeHTTP выплата третьей стороне её доли. Кассу не трогает.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	thirdPartyID, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	var payoutDTO dto.ThirdPartyPayout
	err = json.NewDecoder(r.Body).Decode(&payoutDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	amount, err := payoutDTO.Amount.ToEntity()
	if err != nil {
		dto.WriteError(w, err)
		return
	}

	entry, err := h.service.PayThirdParty(r.Context(), thirdPartyID, amount, payoutDTO.Memo)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("third_party_id", thirdPartyID),
			).Error("pay third party")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationThirdPartyPayout).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.LedgerEntryFromEntity(entry))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
