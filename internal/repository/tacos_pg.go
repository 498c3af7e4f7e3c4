package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taco-cloud/internal/domain"
)

type TacoRepositoryInterface interface {
	Save(ctx context.Context, taco domain.Taco) (domain.Taco, error)
	FindByID(ctx context.Context, id int64) (domain.Taco, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Taco, error)
}

type TacoRepository struct {
	db *sql.DB
}

func NewTacoRepository(db *sql.DB) TacoRepositoryInterface {
	return &TacoRepository{db: db}
}

// Save inserts the taco and its ingredient links in one transaction and
// returns the stored taco with its assigned id.
func (r *TacoRepository) Save(ctx context.Context, taco domain.Taco) (saved domain.Taco, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Taco{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	saved = domain.Taco{Name: taco.Name, Ingredients: append([]string(nil), taco.Ingredients...)}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO taco (name, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at
	`, taco.Name).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return domain.Taco{}, fmt.Errorf("failed to insert taco: %w", err)
	}

	for i, ingredientID := range taco.Ingredients {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO taco_ingredients (taco_id, ingredient_id, position)
			VALUES ($1, $2, $3)
		`, saved.ID, ingredientID, i)
		if err != nil {
			return domain.Taco{}, fmt.Errorf("failed to insert taco ingredient %s: %w", ingredientID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Taco{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

func (r *TacoRepository) FindByID(ctx context.Context, id int64) (domain.Taco, error) {
	var t domain.Taco
	err := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM taco WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Taco{}, ErrTacoNotFound
	}
	if err != nil {
		return domain.Taco{}, fmt.Errorf("failed to get taco %d: %w", id, err)
	}
	if t.Ingredients, err = r.ingredientIDs(ctx, id); err != nil {
		return domain.Taco{}, err
	}
	return t, nil
}

func (r *TacoRepository) FindRecent(ctx context.Context, limit int) ([]domain.Taco, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM taco
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent tacos: %w", err)
	}
	out := []domain.Taco{}
	for rows.Next() {
		var t domain.Taco
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan taco: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		if out[i].Ingredients, err = r.ingredientIDs(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *TacoRepository) ingredientIDs(ctx context.Context, tacoID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ingredient_id FROM taco_ingredients
		WHERE taco_id = $1
		ORDER BY position
	`, tacoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients of taco %d: %w", tacoID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
