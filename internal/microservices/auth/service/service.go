package service

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
)

type Service struct {
	AuthService AuthServiceInterface
}

func New(repo *repository.Repository, sessions session.Store, lg *logger.Logger) *Service {
	return &Service{
		AuthService: NewAuthService(repo.UserRepo, sessions, lg),
	}
}
