package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// PathID целочисленный параметр пути из mux.
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s=%q: %w", name, raw, err)
	}
	return id, nil
}

// PathDate дата вида 2006-01-02 из пути.
func PathDate(r *http.Request, name string) (time.Time, error) {
	raw := mux.Vars(r)[name]
	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("path parameter %s=%q: %w", name, raw, err)
	}
	return day, nil
}
