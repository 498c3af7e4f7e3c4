package service

import "taco-cloud/internal/repository"

type Service struct {
	TacoService TacoServiceInterface
}

func New(repo *repository.Repository) *Service {
	return &Service{TacoService: NewTacoService(repo.TacoRepo)}
}
