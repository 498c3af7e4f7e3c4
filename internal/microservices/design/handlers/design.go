package handlers

import (
	"net/http"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/design/service"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

type DesignHandler struct {
	service  service.DesignServiceInterface
	renderer views.Renderer
	log      *logger.Logger
}

func NewDesignHandler(s service.DesignServiceInterface, renderer views.Renderer, lg *logger.Logger) *DesignHandler {
	return &DesignHandler{service: s, renderer: renderer, log: lg}
}

// ShowDesignForm handles GET /design.
func (dh *DesignHandler) ShowDesignForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	model, err := dh.service.ShowDesignForm(ctx, session.IDFromContext(ctx), session.PrincipalFromContext(ctx))
	if err != nil {
		httpx.ServerError(w, r, dh.log, "show_design_failed", err)
		return
	}
	if err := views.Respond(w, r, dh.renderer, views.Show(views.Design, model)); err != nil {
		httpx.ServerError(w, r, dh.log, "render_failed", err)
	}
}

// ProcessDesign handles POST /design.
func (dh *DesignHandler) ProcessDesign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	form := domain.DesignForm{
		Name:        r.PostForm.Get("name"),
		Ingredients: r.PostForm["ingredients"],
	}

	ctx := r.Context()
	out, err := dh.service.ProcessDesign(ctx, session.IDFromContext(ctx), session.PrincipalFromContext(ctx), form)
	if err != nil {
		httpx.ServerError(w, r, dh.log, "process_design_failed", err)
		return
	}
	if err := views.Respond(w, r, dh.renderer, out); err != nil {
		httpx.ServerError(w, r, dh.log, "render_failed", err)
	}
}
