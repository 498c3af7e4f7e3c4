package handlers

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/microservices/design/service"
	"taco-cloud/internal/views"
)

type Handler struct {
	DesignHandler *DesignHandler
}

func New(s *service.Service, renderer views.Renderer, lg *logger.Logger) *Handler {
	return &Handler{
		DesignHandler: NewDesignHandler(s.DesignService, renderer, lg),
	}
}
