package ingredient

import (
	"context"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the whole catalog ordered by name.
func (s *Service) List(ctx context.Context) ([]Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Ingredient, error) {
	ing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, apperr.NotFound("ingredient", id)
	}
	return ing, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Ingredient, error) {
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}

	ing := &Ingredient{
		Name:        in.Name,
		Unit:        in.Unit,
		PackageSize: in.PackageSize,
		Price:       in.Price,
	}
	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Update merges the supplied fields into the existing record.
// Absent fields are neither validated nor touched.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Ingredient, error) {
	if err := ValidateUpdate(in); err != nil {
		return nil, err
	}

	ing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, apperr.NotFound("ingredient", id)
	}

	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.Unit != nil {
		ing.Unit = *in.Unit
	}
	if in.PackageSize != nil {
		ing.PackageSize = *in.PackageSize
	}
	if in.Price != nil {
		ing.Price = *in.Price
	}

	if err := s.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Delete removes the ingredient. A missing id is a no-op, and line items
// referencing the ingredient are left in place: they hydrate against the
// zero-cost fallback on the next recipe read.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
