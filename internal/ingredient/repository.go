package ingredient

import "context"

// Repository defines the data-access contract for the catalog.
// Service depends ONLY on this interface.
//
// Get returns (nil, nil) when the id does not resolve; the caller decides
// not-found semantics. Delete of a missing id is a no-op.
type Repository interface {
	List(ctx context.Context) ([]Ingredient, error)
	Get(ctx context.Context, id string) (*Ingredient, error)
	Create(ctx context.Context, ing *Ingredient) error
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, id string) error
}
