package home

import "net/http"

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("/{$}", h.handleIndex)
	mux.HandleFunc("/", h.WriteNotFound)
}
