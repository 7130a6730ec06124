package balance_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"settlement/internal/entities"
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

// ServeHTTP остаток контрагента по леджеру. Вид контрагента берётся из пути:
// driver, client или third_party.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	partyID, err := dto.PathID(r, "id")
	if err != nil {
		dto.WriteBadRequest(w, err)
		return
	}

	party := entities.Party{
		Kind: entities.PartyKind(mux.Vars(r)["party"]),
		ID:   partyID,
	}

	balance, err := h.service.BalanceOf(r.Context(), party)
	if err != nil {
		if dto.WriteError(w, err) == http.StatusInternalServerError {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("party", party.String()),
			).Error("get balance")
		}
		return
	}

	response := dto.Balance{
		PartyKind: party.Kind.String(),
		PartyID:   party.ID,
		Balance:   dto.MoneyFromEntity(balance),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
