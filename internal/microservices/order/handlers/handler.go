package handlers

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/microservices/order/service"
	"taco-cloud/internal/views"
)

type Handler struct {
	OrderHandler *OrderHandler
}

func New(s *service.Service, renderer views.Renderer, lg *logger.Logger) *Handler {
	return &Handler{
		OrderHandler: NewOrderHandler(s.OrderService, renderer, lg),
	}
}
