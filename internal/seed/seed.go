package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/logger"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/recipe"
)

// Run seeds demo data when the catalog is empty, so a fresh install has
// something to show. Prices are per package; quantities are in the
// ingredient's own unit.
func Run(ctx context.Context, ingredients *ingredient.Service, recipes *recipe.Service) error {
	existing, err := ingredients.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	flour, err := ingredients.Create(ctx, ingredient.CreateInput{
		Name: "Flour", Unit: "kg", PackageSize: 1, Price: 1500,
	})
	if err != nil {
		return err
	}
	sugar, err := ingredients.Create(ctx, ingredient.CreateInput{
		Name: "Sugar", Unit: "kg", PackageSize: 1, Price: 1200,
	})
	if err != nil {
		return err
	}
	eggs, err := ingredients.Create(ctx, ingredient.CreateInput{
		Name: "Eggs", Unit: "unit", PackageSize: 30, Price: 3000,
	})
	if err != nil {
		return err
	}
	milk, err := ingredients.Create(ctx, ingredient.CreateInput{
		Name: "Milk", Unit: "L", PackageSize: 1, Price: 1000,
	})
	if err != nil {
		return err
	}

	cake, err := recipes.Create(ctx, recipe.CreateInput{
		Name:        "Vanilla Sponge Cake",
		Description: "Basic sponge cake recipe",
	})
	if err != nil {
		return err
	}

	lines := []recipe.AddItemInput{
		{IngredientID: flour.ID, Quantity: 0.250},
		{IngredientID: sugar.ID, Quantity: 0.200},
		{IngredientID: eggs.ID, Quantity: 4},
		{IngredientID: milk.ID, Quantity: 0.100},
	}
	for _, line := range lines {
		if _, err := recipes.AddItem(ctx, cake.ID, line); err != nil {
			return err
		}
	}

	logger.Info("seeded demo data", zap.String("recipe", cake.Name))
	return nil
}
