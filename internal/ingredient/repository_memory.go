package ingredient

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs the catalog with a plain map. Used by tests and
// as the dev store when no DATABASE_URL is configured.
type InMemoryRepository struct {
	mu          sync.RWMutex
	ingredients map[string]Ingredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		ingredients: make(map[string]Ingredient),
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Ingredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &ing, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Generate UUID if not already set
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	if ing.CreatedAt.IsZero() {
		ing.CreatedAt = time.Now()
	}
	r.ingredients[ing.ID] = *ing
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ingredients[ing.ID] = *ing
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ingredients, id)
	return nil
}
