package handlers

import (
	"net/http"

	"taco-cloud/internal/common/httpx"
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/order/service"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

type OrderHandler struct {
	service  service.OrderServiceInterface
	renderer views.Renderer
	log      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, renderer views.Renderer, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, renderer: renderer, log: lg}
}

// CurrentOrder handles GET /orders/current.
func (oh *OrderHandler) CurrentOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	model, err := oh.service.CurrentOrder(ctx, session.IDFromContext(ctx), session.PrincipalFromContext(ctx))
	if err != nil {
		httpx.ServerError(w, r, oh.log, "current_order_failed", err)
		return
	}
	if err := views.Respond(w, r, oh.renderer, views.Show(views.Order, model)); err != nil {
		httpx.ServerError(w, r, oh.log, "render_failed", err)
	}
}

// PlaceOrder handles POST /orders.
func (oh *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}
	form := domain.OrderForm{
		DeliveryName:   r.PostForm.Get("deliveryName"),
		DeliveryStreet: r.PostForm.Get("deliveryStreet"),
		DeliveryCity:   r.PostForm.Get("deliveryCity"),
		DeliveryState:  r.PostForm.Get("deliveryState"),
		DeliveryZip:    r.PostForm.Get("deliveryZip"),
		CCNumber:       r.PostForm.Get("ccNumber"),
		CCExpiration:   r.PostForm.Get("ccExpiration"),
		CCCVV:          r.PostForm.Get("ccCVV"),
	}

	ctx := r.Context()
	out, err := oh.service.PlaceOrder(ctx, session.IDFromContext(ctx), session.PrincipalFromContext(ctx), form)
	if err != nil {
		httpx.ServerError(w, r, oh.log, "place_order_failed", err)
		return
	}
	if err := views.Respond(w, r, oh.renderer, out); err != nil {
		httpx.ServerError(w, r, oh.log, "render_failed", err)
	}
}
