package recipe

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs the registry with plain maps. The single mutex
// covers both recipes and items, so a cascade delete is observed atomically.
type InMemoryRepository struct {
	mu      sync.RWMutex
	recipes map[string]Recipe
	items   map[string][]Item // keyed by recipe id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		recipes: make(map[string]Recipe),
		items:   make(map[string][]Item),
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.recipes[rec.ID] = *rec
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recipes[rec.ID] = *rec
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	delete(r.recipes, id)
	return nil
}

func (r *InMemoryRepository) ListItems(ctx context.Context, recipeID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.items[recipeID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryRepository) AddItem(ctx context.Context, recipeID string, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[recipeID] = append(r.items[recipeID], *item)
	return nil
}

func (r *InMemoryRepository) RemoveItem(ctx context.Context, recipeID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[recipeID]
	for i, item := range items {
		if item.ID == itemID {
			r.items[recipeID] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return nil
}
