package repository

import (
	"context"
	"database/sql"
	"fmt"

	"taco-cloud/internal/domain"
)

type IngredientRepositoryInterface interface {
	FindAll(ctx context.Context) ([]domain.Ingredient, error)
}

type IngredientRepository struct {
	db *sql.DB
}

func NewIngredientRepository(db *sql.DB) IngredientRepositoryInterface {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) FindAll(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type FROM ingredient ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	out := []domain.Ingredient{}
	for rows.Next() {
		var in domain.Ingredient
		var typ string
		if err := rows.Scan(&in.ID, &in.Name, &typ); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		in.Type = domain.IngredientType(typ)
		out = append(out, in)
	}
	return out, rows.Err()
}
