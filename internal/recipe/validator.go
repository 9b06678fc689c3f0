package recipe

import (
	"math"
	"strings"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/apperr"
)

func ValidateCreate(in CreateInput) error {
	return validateName(in.Name)
}

func ValidateUpdate(in UpdateInput) error {
	if in.Name != nil {
		return validateName(*in.Name)
	}
	return nil
}

// ValidateAddItem requires a non-empty ingredient reference and a finite
// positive quantity. The ingredient does not have to exist: dangling
// references are tolerated and hydrate against the fallback.
func ValidateAddItem(in AddItemInput) error {
	if strings.TrimSpace(in.IngredientID) == "" {
		return apperr.Validation("ingredientId", "ingredientId is required")
	}
	if math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) || in.Quantity <= 0 {
		return apperr.Validation("quantity", "quantity must be greater than 0")
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name", "name is required")
	}
	return nil
}
