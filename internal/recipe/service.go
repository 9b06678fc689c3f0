package recipe

import (
	"context"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/apperr"
	"github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"
)

// IngredientSource resolves catalog entries during hydration. A missing id
// returns (nil, nil); the service substitutes the fallback ingredient.
type IngredientSource interface {
	Get(ctx context.Context, id string) (*ingredient.Ingredient, error)
}

type Service struct {
	repo        Repository
	ingredients IngredientSource
}

func NewService(repo Repository, ingredients IngredientSource) *Service {
	return &Service{repo: repo, ingredients: ingredients}
}

// List returns recipe summaries without line items. The list page does not
// need the ingredient graph, so it is never hydrated here.
func (s *Service) List(ctx context.Context) ([]Recipe, error) {
	return s.repo.List(ctx)
}

// Get returns the recipe with hydrated line items and freshly computed
// costs. A recipe with zero items is a valid detail, not an error.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("recipe", id)
	}

	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	hydrated := make([]HydratedItem, 0, len(items))
	for _, item := range items {
		ing, err := s.ingredients.Get(ctx, item.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			// Dangling reference: the ingredient was deleted after the item
			// was added. Cost resolves to zero instead of failing the read.
			fallback := ingredient.Fallback(item.IngredientID)
			ing = &fallback
		}

		h := HydratedItem{Item: item, Ingredient: *ing}
		h.UnitCost = ingredient.UnitCost(*ing)
		h.LineCost = LineCost(h)
		hydrated = append(hydrated, h)
	}

	total := RecipeCost(hydrated)
	return &Detail{
		Recipe:         *rec,
		Ingredients:    hydrated,
		TotalCost:      total,
		SuggestedPrice: SuggestedPrice(total, DefaultMargin),
	}, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Recipe, error) {
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}

	rec := &Recipe{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Recipe, error) {
	if err := ValidateUpdate(in); err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("recipe", id)
	}

	if in.Name != nil {
		rec.Name = *in.Name
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the recipe and all of its line items. A missing id is a
// no-op; a partial cascade surfaces as an InconsistencyError from the repo.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddItem attaches an ingredient line to an existing recipe. Adding the
// same ingredient twice creates a second line item; quantities are never
// merged.
func (s *Service) AddItem(ctx context.Context, recipeID string, in AddItemInput) (*Item, error) {
	if err := ValidateAddItem(in); err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("recipe", recipeID)
	}

	item := &Item{
		IngredientID: in.IngredientID,
		Quantity:     in.Quantity,
	}
	if err := s.repo.AddItem(ctx, recipeID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes one line item by id. A missing item is a no-op.
func (s *Service) RemoveItem(ctx context.Context, recipeID, itemID string) error {
	return s.repo.RemoveItem(ctx, recipeID, itemID)
}
