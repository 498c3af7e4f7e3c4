package handler

import "net/http"

// Register mounts the JSON API on mux.
func Register(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/tacos/recent", h.TacoHandler.RecentTacos)
	mux.HandleFunc("GET /api/tacos/{id}", h.TacoHandler.GetTaco)
}
