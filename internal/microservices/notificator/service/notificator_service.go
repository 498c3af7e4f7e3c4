package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/domain"
)

const consumerTag = "notificator"

// Consumer is satisfied by rabbitmq.Client.
type Consumer interface {
	Consume(queue, consumer string, prefetch int) (<-chan amqp.Delivery, error)
}

type NotificatorService struct {
	consumer Consumer
	log      *logger.Logger
}

func NewNotificatorService(consumer Consumer, lg *logger.Logger) *NotificatorService {
	return &NotificatorService{consumer: consumer, log: lg}
}

func (ns *NotificatorService) Notify(ctx context.Context) error {
	msgs, err := ns.consumer.Consume(domain.NotificationsQueue, consumerTag, 10)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", domain.NotificationsQueue, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			ns.handle(d)
		}
	}
}

// handle acks well-formed events and drops malformed ones without requeueing.
func (ns *NotificatorService) handle(d amqp.Delivery) {
	var ev domain.OrderPlacedEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		ns.log.Error("notification_malformed", err, map[string]any{"routing_key": d.RoutingKey})
		_ = d.Nack(false, false)
		return
	}
	ns.log.Info("order_notification", map[string]any{
		"order_id":      ev.OrderID,
		"username":      ev.Username,
		"delivery_name": ev.DeliveryName,
		"delivery_city": ev.DeliveryCity,
		"tacos":         ev.Tacos,
		"message_id":    d.Headers["x-message-id"],
	})
	_ = d.Ack(false)
}
