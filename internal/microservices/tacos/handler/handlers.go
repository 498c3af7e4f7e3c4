package handler

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/microservices/tacos/service"
)

type Handler struct {
	TacoHandler *TacoHandler
}

func New(s *service.Service, lg *logger.Logger) *Handler {
	return &Handler{
		TacoHandler: NewTacoHandler(s.TacoService, lg),
	}
}
