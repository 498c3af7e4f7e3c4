package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"taco-cloud/internal/domain"
)

type UserRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Save(ctx context.Context, u domain.User) (domain.User, error)
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, fullname, street, city, state, zip, phone_number
		FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Password, &u.Fullname, &u.Street, &u.City, &u.State, &u.Zip, &u.PhoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return u, nil
}

func (r *UserRepository) Save(ctx context.Context, u domain.User) (domain.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, fullname, street, city, state, zip, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, u.Username, u.Password, u.Fullname, u.Street, u.City, u.State, u.Zip, u.PhoneNumber).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}
