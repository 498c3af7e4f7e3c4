// Package session keeps per-browser state, chiefly the order being built,
// in an explicit store keyed by session id.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"taco-cloud/internal/domain"
)

var ErrConflict = errors.New("session modified concurrently")

type Session struct {
	ID       string       `json:"id"`
	Username string       `json:"username,omitempty"`
	Order    domain.Order `json:"order"`

	CSRFToken string `json:"csrf_token,omitempty"`
}

func New(id string) *Session {
	return &Session{ID: id, Order: domain.NewOrder()}
}

type Store interface {
	// Get returns the session, or a fresh one holding an empty order.
	Get(ctx context.Context, id string) (*Session, error)
	// Update applies fn to the current session and stores the result atomically.
	// Nothing is written when fn returns an error.
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id string) error
}

func normalize(s *Session, id string) *Session {
	s.ID = id
	if s.Order.Tacos == nil {
		s.Order.Tacos = []domain.Taco{}
	}
	return s
}

// Rotate moves the session stored under oldID to a freshly minted id, applies
// fn to it and deletes the old key. The CSRF token is not carried over.
func Rotate(ctx context.Context, store Store, oldID string, fn func(*Session) error) (*Session, error) {
	old, err := store.Get(ctx, oldID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s, err := store.Update(ctx, uuid.NewString(), func(s *Session) error {
		s.Username = old.Username
		s.Order = old.Order
		return fn(s)
	})
	if err != nil {
		return nil, err
	}
	if err := store.Delete(ctx, oldID); err != nil {
		return nil, fmt.Errorf("drop rotated session: %w", err)
	}
	return s, nil
}
