package recipe

import "github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"

// Cost arithmetic. PURE functions (no repo / no I/O), full float64 precision;
// rounding for display belongs to the frontend.

// DefaultMargin is the 30% pricing guidance shown on the recipe detail page.
const DefaultMargin = 0.3

// LineCost is the unit cost of the referenced ingredient times the quantity
// used by the line item.
func LineCost(item HydratedItem) float64 {
	return ingredient.UnitCost(item.Ingredient) * item.Quantity
}

// RecipeCost sums line costs. An empty item list costs exactly 0, and the
// total does not depend on item order.
func RecipeCost(items []HydratedItem) float64 {
	var total float64
	for _, item := range items {
		total += LineCost(item)
	}
	return total
}

// SuggestedPrice divides the cost by the margin fraction (cost / 0.3 at the
// default). This is the margin-of-final-price convention, not a cost-plus
// markup.
func SuggestedPrice(cost, margin float64) float64 {
	if margin == 0 {
		return 0
	}
	return cost / margin
}
