package web

import (
	"net/http"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

type homeModel struct {
	Username string
	Tacos    int
}

type homeHandler struct {
	sessions session.Store
	renderer views.Renderer
	log      *logger.Logger
}

func (h *homeHandler) Show(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.Context(), session.IDFromContext(r.Context()))
	if err != nil {
		httpx.ServerError(w, r, h.log, "session_load_failed", err)
		return
	}
	model := homeModel{Username: s.Username, Tacos: len(s.Order.Tacos)}
	if err := views.Respond(w, r, h.renderer, views.Show(views.Home, model)); err != nil {
		httpx.ServerError(w, r, h.log, "render_failed", err)
	}
}
