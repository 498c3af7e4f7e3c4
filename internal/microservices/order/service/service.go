package service

import (
	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/connections/rabbitmq"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
)

type Service struct {
	OrderService OrderServiceInterface
}

func New(repo *repository.Repository, sessions session.Store, publisher rabbitmq.Publisher, lg *logger.Logger) *Service {
	return &Service{
		OrderService: NewOrderService(repo.OrderRepo, repo.UserRepo, sessions, publisher, lg),
	}
}
