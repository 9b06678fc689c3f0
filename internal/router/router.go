package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/middleware"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/recipe"
)

// New assembles the gin engine with the full API surface.
func New(
	ingredientHandler *ingredient.Handler,
	recipeHandler *recipe.Handler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/:id", ingredientHandler.Get)
		ingredients.POST("", ingredientHandler.Create)
		ingredients.PUT("/:id", ingredientHandler.Update)
		ingredients.DELETE("/:id", ingredientHandler.Delete)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:id", recipeHandler.Get)
		recipes.POST("", recipeHandler.Create)
		recipes.PUT("/:id", recipeHandler.Update)
		recipes.DELETE("/:id", recipeHandler.Delete)

		recipes.POST("/:id/ingredients", recipeHandler.AddItem)
		recipes.DELETE("/:id/ingredients/:itemId", recipeHandler.RemoveItem)
	}

	return r
}
