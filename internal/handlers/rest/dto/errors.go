package dto

import (
	"encoding/json"
	"errors"
	"net/http"

	"settlement/internal/entities"
)

type Error struct {
	Error string `json:"error"`
}

// StatusOf код ответа по классу ошибки.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entities.ErrConsistency):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteError отвечает кодом по классу ошибки. Текст внутренних ошибок наружу не отдаётся.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusOf(err)

	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
	return status
}

// ErrBadRequest тело или параметры запроса не разбираются.
var ErrBadRequest = errors.New("malformed request")

func WriteBadRequest(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(Error{Error: errors.Join(ErrBadRequest, err).Error()})
}
