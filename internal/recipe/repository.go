package recipe

import "context"

// Repository defines the data-access contract for recipes and their line
// items. Service depends ONLY on this interface.
//
// Get returns (nil, nil) when the id does not resolve. Delete cascades to
// the recipe's line items and must be atomic: a reader never observes the
// recipe gone while its items remain, or the reverse. Delete and RemoveItem
// of missing ids are no-ops.
type Repository interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Create(ctx context.Context, rec *Recipe) error
	Update(ctx context.Context, rec *Recipe) error
	Delete(ctx context.Context, id string) error

	ListItems(ctx context.Context, recipeID string) ([]Item, error)
	AddItem(ctx context.Context, recipeID string, item *Item) error
	RemoveItem(ctx context.Context, recipeID, itemID string) error
}
