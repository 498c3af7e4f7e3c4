package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taco-cloud/internal/domain"
	"taco-cloud/internal/repository"
)

const (
	DefaultRecentLimit = 12
	MaxRecentLimit     = 50
)

type TacoServiceInterface interface {
	Recent(ctx context.Context, limit int) ([]domain.TacoSummary, error)
	Get(ctx context.Context, id int64) (domain.TacoSummary, bool, error)
}

type TacoService struct {
	repo repository.TacoRepositoryInterface
}

func NewTacoService(repo repository.TacoRepositoryInterface) *TacoService {
	return &TacoService{repo: repo}
}

// Recent returns the newest tacos first; limit is clamped to [1, MaxRecentLimit].
func (s *TacoService) Recent(ctx context.Context, limit int) ([]domain.TacoSummary, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	tacos, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent tacos: %w", err)
	}
	out := make([]domain.TacoSummary, 0, len(tacos))
	for _, t := range tacos {
		out = append(out, summary(t))
	}
	return out, nil
}

func (s *TacoService) Get(ctx context.Context, id int64) (domain.TacoSummary, bool, error) {
	t, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrTacoNotFound) {
		return domain.TacoSummary{}, false, nil
	}
	if err != nil {
		return domain.TacoSummary{}, false, fmt.Errorf("failed to load taco %d: %w", id, err)
	}
	return summary(t), true, nil
}

func summary(t domain.Taco) domain.TacoSummary {
	ingredients := t.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return domain.TacoSummary{
		ID:          t.ID,
		Name:        t.Name,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		Ingredients: ingredients,
	}
}
