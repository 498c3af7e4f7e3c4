package domain

import "time"

const (
	OrdersExchange      = "orders_topic"
	NotificationsQueue  = "notifications.q"
	OrderPlacedRouteKey = "order.placed"
)

// OrderPlacedEvent is published after a checkout commits.
type OrderPlacedEvent struct {
	OrderID      int64     `json:"order_id"`
	Username     string    `json:"username"`
	DeliveryName string    `json:"delivery_name"`
	DeliveryCity string    `json:"delivery_city"`
	Tacos        []string  `json:"tacos"`
	PlacedAt     time.Time `json:"placed_at"`
}
