package recipe

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/apperr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, created_at
		FROM recipes
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		var rec Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Recipe, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, created_at
		FROM recipes
		WHERE id = $1
	`, id)

	rec := &Recipe{}
	err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *Recipe) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO recipes (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`, rec.ID, rec.Name, rec.Description, rec.CreatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, rec *Recipe) error {
	_, err := r.db.Exec(ctx, `
		UPDATE recipes
		SET name = $1, description = $2
		WHERE id = $3
	`, rec.Name, rec.Description, rec.ID)
	return err
}

// Delete cascades line items and the recipe record inside one transaction.
// A failure after the items are gone must surface as an inconsistency, not
// disappear into a generic error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Inconsistency("recipe cascade delete", err)
	}
	return nil
}

func (r *PostgresRepository) ListItems(ctx context.Context, recipeID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, ingredient_id, quantity
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY created_at
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.IngredientID, &item.Quantity); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) AddItem(ctx context.Context, recipeID string, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO recipe_ingredients (id, recipe_id, ingredient_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, recipeID, item.IngredientID, item.Quantity, time.Now())
	return err
}

func (r *PostgresRepository) RemoveItem(ctx context.Context, recipeID, itemID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM recipe_ingredients
		WHERE recipe_id = $1 AND id = $2
	`, recipeID, itemID)
	return err
}
