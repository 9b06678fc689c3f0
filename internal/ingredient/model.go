package ingredient

import "time"

// Ingredient is a raw-material catalog entry. Price is the cost of one
// purchased package, PackageSize the quantity it contains expressed in Unit.
type Ingredient struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	PackageSize float64   `json:"packageSize"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UnitCost is the price per single unit of measure. Validation forbids a
// zero package size, but the floor keeps reads safe if one ever slips in.
func UnitCost(ing Ingredient) float64 {
	if ing.PackageSize == 0 {
		return 0
	}
	return ing.Price / ing.PackageSize
}

// Fallback is the placeholder hydrated into line items whose ingredient
// reference no longer resolves. Its unit cost is zero, so a dangling
// reference never breaks a recipe read.
func Fallback(id string) Ingredient {
	return Ingredient{
		ID:          id,
		Name:        "Unknown",
		Unit:        "u",
		PackageSize: 1,
		Price:       0,
	}
}

// CreateInput carries the fields accepted on catalog create.
type CreateInput struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	PackageSize float64 `json:"packageSize"`
	Price       float64 `json:"price"`
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name        *string  `json:"name"`
	Unit        *string  `json:"unit"`
	PackageSize *float64 `json:"packageSize"`
	Price       *float64 `json:"price"`
}
