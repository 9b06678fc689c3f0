package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/config"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/db"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/logger"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/recipe"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/router"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/seed"
)

func main() {

	// ───────────────────────── ENV + LOGGER ─────────────────────────
	cfg := config.Load()
	logger.Init()
	defer logger.Sync()

	// ───────────────────────── REPOSITORIES ─────────────────────────
	var (
		ingredientRepo ingredient.Repository
		recipeRepo     recipe.Repository
	)

	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres init failed", zap.Error(err))
		}
		defer pool.Close()

		ingredientRepo = ingredient.NewPostgresRepository(pool)
		recipeRepo = recipe.NewPostgresRepository(pool)
	} else {
		// Dev fallback: everything lives in process memory.
		logger.Warn("DATABASE_URL not set, using in-memory store")
		ingredientRepo = ingredient.NewInMemoryRepository()
		recipeRepo = recipe.NewInMemoryRepository()
	}

	// ───────────────────────── SERVICES ─────────────────────────
	ingredientService := ingredient.NewService(ingredientRepo)
	recipeService := recipe.NewService(recipeRepo, ingredientRepo)

	if err := seed.Run(context.Background(), ingredientService, recipeService); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	ingredientHandler := ingredient.NewHandler(ingredientService)
	recipeHandler := recipe.NewHandler(recipeService)

	r := router.New(ingredientHandler, recipeHandler, cfg.CORSOrigins)

	// ───────────────────────── START ─────────────────────────
	logger.Info("API running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
