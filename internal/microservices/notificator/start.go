package notificator

import (
	"context"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/microservices/notificator/service"
)

// Start consumes order notifications until ctx is canceled or the broker
// closes the delivery channel.
func Start(ctx context.Context, consumer service.Consumer, lg *logger.Logger) error {
	svc := service.New(consumer, lg)
	return svc.NotificatorService.Notify(ctx)
}
