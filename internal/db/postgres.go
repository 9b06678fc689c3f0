package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/logger"
)

func ConnectPostgres(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates the tables on first run.
//
// recipe_ingredients.ingredient_id carries NO foreign key: the reference is
// weak, deleting an ingredient leaves items dangling and reads hydrate the
// zero-cost fallback instead.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			unit TEXT NOT NULL,
			package_size DOUBLE PRECISION NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	recipesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, recipesSQL); err != nil {
		return err
	}

	recipeIngredientsSQL := `
		CREATE TABLE IF NOT EXISTS recipe_ingredients (
			id TEXT PRIMARY KEY,
			recipe_id TEXT NOT NULL REFERENCES recipes(id),
			ingredient_id TEXT NOT NULL,
			quantity DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, recipeIngredientsSQL); err != nil {
		return err
	}

	logger.Info("schema initialized", zap.Int("tables", 3))
	return nil
}
