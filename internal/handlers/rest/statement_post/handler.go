package statement_post

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

// ServeHTTP выпускает выписку по набору доставленных заказов. Заказ, уже занятый
// другой выпиской, даёт 409.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var issueDTO dto.StatementIssue
	err := json.NewDecoder(r.Body).Decode(&issueDTO)
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	statementEntity, err := h.service.Issue(r.Context(), issueDTO.ToEntity())
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("entity_type", issueDTO.EntityType),
				logger.NewField("entity_id", issueDTO.EntityID),
			).Error("issue statement")
		}
		return
	}

	metrics.SettlementOperationsTotal.WithLabelValues(metrics.OperationStatementIssue).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.StatementFromEntity(statementEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
