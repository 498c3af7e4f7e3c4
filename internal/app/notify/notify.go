package notify

import (
	"context"
	"fmt"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/config"
	"taco-cloud/internal/connections/rabbitmq"
	"taco-cloud/internal/microservices/notificator"
)

func Run(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("notification-subscriber")
	defer lg.Sync()

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer rmq.Close()
	if err := rmq.DeclareTopology(); err != nil {
		return err
	}

	lg.Info("service_started", map[string]any{"host": cfg.RabbitMQ.Host})
	return notificator.Start(ctx, rmq, lg)
}
