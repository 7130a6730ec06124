package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouteTemplate шаблон роута (/statements/{id}) вместо пути, чтобы id не попадали в лейблы.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return template
}
