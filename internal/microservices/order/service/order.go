package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"taco-cloud/internal/common/logger"
	"taco-cloud/internal/common/metrics"
	"taco-cloud/internal/common/validation"
	"taco-cloud/internal/connections/rabbitmq"
	"taco-cloud/internal/domain"
	"taco-cloud/internal/microservices/order/dto"
	"taco-cloud/internal/repository"
	"taco-cloud/internal/session"
	"taco-cloud/internal/views"
)

type OrderServiceInterface interface {
	CurrentOrder(ctx context.Context, sessionID, username string) (dto.OrderModel, error)
	PlaceOrder(ctx context.Context, sessionID, username string, form domain.OrderForm) (views.Outcome, error)
}

type OrderService struct {
	orders    repository.OrderRepositoryInterface
	users     repository.UserRepositoryInterface
	sessions  session.Store
	publisher rabbitmq.Publisher
	validator *validation.Validator
	log       *logger.Logger
}

func NewOrderService(
	orders repository.OrderRepositoryInterface,
	users repository.UserRepositoryInterface,
	sessions session.Store,
	publisher rabbitmq.Publisher,
	lg *logger.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		users:     users,
		sessions:  sessions,
		publisher: publisher,
		validator: dto.OrderMessages(validation.New()),
		log:       lg,
	}
}

func (or *OrderService) CurrentOrder(ctx context.Context, sessionID, username string) (dto.OrderModel, error) {
	sess, err := or.sessions.Get(ctx, sessionID)
	if err != nil {
		return dto.OrderModel{}, fmt.Errorf("failed to load session: %w", err)
	}
	user, err := or.users.FindByUsername(ctx, username)
	if err != nil {
		return dto.OrderModel{}, fmt.Errorf("failed to resolve principal: %w", err)
	}
	return dto.OrderModel{
		Order: sess.Order,
		User:  user,
		Form:  dto.Prefill(domain.OrderForm{}, user),
	}, nil
}

// PlaceOrder validates the checkout form, persists the session order, publishes
// order.placed and removes the placed tacos from the session order.
func (or *OrderService) PlaceOrder(ctx context.Context, sessionID, username string, form domain.OrderForm) (views.Outcome, error) {
	sess, err := or.sessions.Get(ctx, sessionID)
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to load session: %w", err)
	}
	user, err := or.users.FindByUsername(ctx, username)
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to resolve principal: %w", err)
	}

	form = trim(form)
	form.Tacos = len(sess.Order.Tacos)
	errs, err := or.validator.Check(form)
	if err != nil {
		return views.Outcome{}, err
	}
	if len(errs) > 0 {
		return views.Show(views.Order, dto.OrderModel{Order: sess.Order, User: user, Form: form, Errors: errs}), nil
	}

	order := dto.Apply(sess.Order, form)
	order.UserID = user.ID
	saved, err := or.orders.Save(ctx, order)
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to save order: %w", err)
	}
	metrics.OrdersPlaced.Inc()
	or.log.Info("order_placed", map[string]any{"order_id": saved.ID, "username": username, "tacos": len(saved.Tacos)})

	// The order is committed; a broker failure only costs the notification.
	if err := or.publish(ctx, saved, username); err != nil {
		or.log.Error("order_publish_failed", err, map[string]any{"order_id": saved.ID})
	}

	placed := make(map[int64]struct{}, len(saved.Tacos))
	for _, t := range saved.Tacos {
		placed[t.ID] = struct{}{}
	}
	// Designs added while this checkout ran stay for the next order.
	_, err = or.sessions.Update(ctx, sessionID, func(s *session.Session) error {
		next := domain.NewOrder()
		for _, t := range s.Order.Tacos {
			if _, ok := placed[t.ID]; !ok {
				next.AddDesign(t)
			}
		}
		s.Order = next
		return nil
	})
	if err != nil {
		return views.Outcome{}, fmt.Errorf("failed to reset session order: %w", err)
	}
	return views.RedirectTo(dto.RedirectAfterCheckout), nil
}

func (or *OrderService) publish(ctx context.Context, o domain.Order, username string) error {
	if or.publisher == nil {
		return nil
	}
	names := make([]string, 0, len(o.Tacos))
	for _, t := range o.Tacos {
		names = append(names, t.Name)
	}
	body, err := json.Marshal(domain.OrderPlacedEvent{
		OrderID:      o.ID,
		Username:     username,
		DeliveryName: o.Delivery.Name,
		DeliveryCity: o.Delivery.City,
		Tacos:        names,
		PlacedAt:     o.PlacedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	headers := amqp091.Table{
		"x-source":     "taco-cloud",
		"x-message-id": uuid.NewString(),
	}
	if err := or.publisher.Publish(ctx, domain.OrdersExchange, domain.OrderPlacedRouteKey, body, headers, "application/json", true); err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}
	return nil
}

func trim(f domain.OrderForm) domain.OrderForm {
	f.DeliveryName = strings.TrimSpace(f.DeliveryName)
	f.DeliveryStreet = strings.TrimSpace(f.DeliveryStreet)
	f.DeliveryCity = strings.TrimSpace(f.DeliveryCity)
	f.DeliveryState = strings.TrimSpace(f.DeliveryState)
	f.DeliveryZip = strings.TrimSpace(f.DeliveryZip)
	f.CCNumber = strings.ReplaceAll(strings.TrimSpace(f.CCNumber), " ", "")
	f.CCExpiration = strings.TrimSpace(f.CCExpiration)
	f.CCCVV = strings.TrimSpace(f.CCCVV)
	return f
}
