// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"taco-cloud/internal/domain"
	"taco-cloud/internal/repository"
)

type Store struct {
	mu sync.Mutex

	Ingredients []domain.Ingredient
	Tacos       []domain.Taco
	Users       map[string]domain.User
	Orders      []domain.Order

	Calls   map[string]int
	nextErr map[string]error
	nextID  int64
}

func New() *Store {
	return &Store{
		Users:   map[string]domain.User{},
		Calls:   map[string]int{},
		nextErr: map[string]error{},
	}
}

// Repository exposes the store through every repository interface.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		IngredientRepo: ingredients{s},
		TacoRepo:       tacos{s},
		UserRepo:       users{s},
		OrderRepo:      orders{s},
	}
}

// SetErr makes the next call of op fail with err.
func (s *Store) SetErr(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextErr[op] = err
}

func (s *Store) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls[op]
}

func (s *Store) AddUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u.ID = s.nextID
	s.Users[u.Username] = u
	return u
}

func (s *Store) enter(op string) error {
	s.Calls[op]++
	if err, ok := s.nextErr[op]; ok {
		delete(s.nextErr, op)
		return err
	}
	return nil
}

type ingredients struct{ s *Store }

func (r ingredients) FindAll(_ context.Context) ([]domain.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Ingredients.FindAll"); err != nil {
		return nil, err
	}
	return append([]domain.Ingredient{}, r.s.Ingredients...), nil
}

type tacos struct{ s *Store }

func (r tacos) Save(_ context.Context, t domain.Taco) (domain.Taco, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Tacos.Save"); err != nil {
		return domain.Taco{}, err
	}
	r.s.nextID++
	t.ID = r.s.nextID
	t.CreatedAt = time.Now().UTC()
	t.Ingredients = append([]string(nil), t.Ingredients...)
	r.s.Tacos = append(r.s.Tacos, t)
	return t, nil
}

func (r tacos) FindByID(_ context.Context, id int64) (domain.Taco, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Tacos.FindByID"); err != nil {
		return domain.Taco{}, err
	}
	for _, t := range r.s.Tacos {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Taco{}, repository.ErrTacoNotFound
}

func (r tacos) FindRecent(_ context.Context, limit int) ([]domain.Taco, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Tacos.FindRecent"); err != nil {
		return nil, err
	}
	out := append([]domain.Taco{}, r.s.Tacos...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type users struct{ s *Store }

func (r users) FindByUsername(_ context.Context, username string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Users.FindByUsername"); err != nil {
		return domain.User{}, err
	}
	u, ok := r.s.Users[username]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: %s", repository.ErrUserNotFound, username)
	}
	return u, nil
}

func (r users) Save(_ context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Users.Save"); err != nil {
		return domain.User{}, err
	}
	if _, ok := r.s.Users[u.Username]; ok {
		return domain.User{}, repository.ErrUsernameTaken
	}
	r.s.nextID++
	u.ID = r.s.nextID
	r.s.Users[u.Username] = u
	return u, nil
}

type orders struct{ s *Store }

func (r orders) Save(_ context.Context, o domain.Order) (domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.enter("Orders.Save"); err != nil {
		return domain.Order{}, err
	}
	r.s.nextID++
	o.ID = r.s.nextID
	o.PlacedAt = time.Now().UTC()
	r.s.Orders = append(r.s.Orders, o)
	return o, nil
}
