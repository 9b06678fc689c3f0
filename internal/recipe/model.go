package recipe

import (
	"time"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"
)

// Recipe is the summary record returned by list views. Line items are only
// hydrated on a detail read.
type Recipe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Item is one ingredient line of a recipe. IngredientID is a weak reference:
// the ingredient may have been deleted since the item was added.
type Item struct {
	ID           string  `json:"id"`
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// HydratedItem is a line item joined with its ingredient (or the zero-cost
// fallback) plus the costs derived from current catalog prices.
type HydratedItem struct {
	Item
	Ingredient ingredient.Ingredient `json:"ingredient"`
	UnitCost   float64               `json:"unitCost"`
	LineCost   float64               `json:"lineCost"`
}

// Detail is the full recipe view. Costs are computed fresh on every read,
// never stored.
type Detail struct {
	Recipe
	Ingredients    []HydratedItem `json:"ingredients"`
	TotalCost      float64        `json:"totalCost"`
	SuggestedPrice float64        `json:"suggestedPrice"`
}

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AddItemInput struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}
