package service

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
)

type Service struct {
	DesignService DesignServiceInterface
}

func New(repo *repository.Repository, sessions session.Store, lg *logger.Logger) *Service {
	return &Service{
		DesignService: NewDesignService(repo.IngredientRepo, repo.TacoRepo, repo.UserRepo, sessions, lg),
	}
}
