package ingredient

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, unit, package_size, price, created_at
		FROM ingredients
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.Name, &ing.Unit,
			&ing.PackageSize, &ing.Price, &ing.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Ingredient, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, unit, package_size, price, created_at
		FROM ingredients
		WHERE id = $1
	`, id)

	ing := &Ingredient{}
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.Unit,
		&ing.PackageSize, &ing.Price, &ing.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ing, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ing *Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	if ing.CreatedAt.IsZero() {
		ing.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO ingredients (id, name, unit, package_size, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ing.ID, ing.Name, ing.Unit, ing.PackageSize, ing.Price, ing.CreatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	_, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $1, unit = $2, package_size = $3, price = $4
		WHERE id = $5
	`, ing.Name, ing.Unit, ing.PackageSize, ing.Price, ing.ID)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	return err
}
