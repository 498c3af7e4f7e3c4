package handler

import (
	"net/http"
	"strconv"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/microservices/tacos/service"
)

type TacoHandler struct {
	service service.TacoServiceInterface
	log     *logger.Logger
}

func NewTacoHandler(svc service.TacoServiceInterface, lg *logger.Logger) *TacoHandler {
	return &TacoHandler{service: svc, log: lg}
}

func (h *TacoHandler) RecentTacos(w http.ResponseWriter, r *http.Request) {
	limit := httpx.AtoiDefault(r.URL.Query().Get("limit"), service.DefaultRecentLimit)
	tacos, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		h.log.Error("recent_tacos_failed", err, nil)
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "could not load tacos")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tacos)
}

func (h *TacoHandler) GetTaco(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "taco id must be a positive integer")
		return
	}
	t, ok, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.log.Error("get_taco_failed", err, map[string]any{"taco_id": id})
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "could not load taco")
		return
	}
	if !ok {
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", "taco not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}
