package handlers

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/microservices/auth/service"
	"taco-cloud/internal/views"
)

type Handler struct {
	AuthHandler *AuthHandler
}

func New(s *service.Service, renderer views.Renderer, lg *logger.Logger) *Handler {
	return &Handler{
		AuthHandler: NewAuthHandler(s.AuthService, renderer, lg),
	}
}
