package repository

import (
	"database/sql"
	"errors"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrTacoNotFound  = errors.New("taco not found")
)

type Repository struct {
	IngredientRepo IngredientRepositoryInterface
	TacoRepo       TacoRepositoryInterface
	UserRepo       UserRepositoryInterface
	OrderRepo      OrderRepositoryInterface
}

func New(db *sql.DB) *Repository {
	return &Repository{
		IngredientRepo: NewIngredientRepository(db),
		TacoRepo:       NewTacoRepository(db),
		UserRepo:       NewUserRepository(db),
		OrderRepo:      NewOrderRepository(db),
	}
}
