package third_party_remittance_post

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
	thirdPartyID, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	var remittanceDTO dto.ThirdPartyRemittanceRequest
	err = json.NewDecoder(r.Body).Decode(&remittanceDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	amount, err := remittanceDTO.Amount.ToEntity()
	if err != nil {
		dto.WriteError(w, err)
		return
	}

	remittance, err := h.service.ReceiveThirdPartyRemittance(r.Context(), thirdPartyID, remittanceDTO.OrderIDs, amount)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("third_party_id", thirdPartyID),
			).Error("receive third party remittance")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationThirdPartyRemittance).Inc()
	metrics.SettlementOrdersTotal.WithLabelValues(metrics.OperationThirdPartyRemittance).Add(float64(len(remittance.OrderIDs)))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.ThirdPartyRemittanceFromEntity(remittance))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
