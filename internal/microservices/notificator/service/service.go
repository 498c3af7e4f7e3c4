package service

import "taco-cloud/internal/common/logger"

type Service struct {
	NotificatorService *NotificatorService
}

func New(consumer Consumer, lg *logger.Logger) *Service {
	return &Service{NotificatorService: NewNotificatorService(consumer, lg)}
}
