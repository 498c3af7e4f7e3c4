package repository

import (
	"context"
	"database/sql"
	"fmt"

	"taco-cloud/internal/domain"
)

type OrderRepositoryInterface interface {
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

// Save stores the order and links its already-persisted tacos.
func (or *OrderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	tx, err := or.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Insert order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO taco_order
		    (user_id, delivery_name, delivery_street, delivery_city, delivery_state, delivery_zip,
		     cc_number, cc_expiration, cc_cvv, placed_at)
		VALUES
		    ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, placed_at
	`,
		nullIfZero(order.UserID),
		order.Delivery.Name,
		order.Delivery.Street,
		order.Delivery.City,
		order.Delivery.State,
		order.Delivery.Zip,
		order.CCNumber,
		order.CCExpiration,
		order.CCCVV,
	).Scan(&order.ID, &order.PlacedAt)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	// 2. Link tacos
	for i, taco := range order.Tacos {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO taco_order_tacos (order_id, taco_id, position)
			VALUES ($1, $2, $3)
		`, order.ID, taco.ID, i)
		if err != nil {
			return domain.Order{}, fmt.Errorf("failed to link taco %d: %w", taco.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return order, nil
}

func nullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
