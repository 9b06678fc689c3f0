package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/ingredient"
)

func setupTestRouter() (*gin.Engine, *Service, *ingredient.Service) {
	gin.SetMode(gin.TestMode)

	ingredientRepo := ingredient.NewInMemoryRepository()
	service := NewService(NewInMemoryRepository(), ingredientRepo)
	handler := NewHandler(service)

	r := gin.New()
	r.GET("/api/recipes", handler.List)
	r.GET("/api/recipes/:id", handler.Get)
	r.POST("/api/recipes", handler.Create)
	r.PUT("/api/recipes/:id", handler.Update)
	r.DELETE("/api/recipes/:id", handler.Delete)
	r.POST("/api/recipes/:id/ingredients", handler.AddItem)
	r.DELETE("/api/recipes/:id/ingredients/:itemId", handler.RemoveItem)

	return r, service, ingredient.NewService(ingredientRepo)
}

func TestCreateRecipeEndpoint(t *testing.T) {
	r, _, _ := setupTestRouter()

	body, _ := json.Marshal(map[string]string{
		"name":        "Vanilla Sponge Cake",
		"description": "Basic sponge cake recipe",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateRecipeMissingName(t *testing.T) {
	r, _, _ := setupTestRouter()

	body, _ := json.Marshal(map[string]string{"description": "no name"})
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp struct {
		Field string `json:"field"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Field != "name" {
		t.Fatalf("expected field name, got %q", resp.Field)
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	r, _, _ := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestGetRecipeDetailIncludesCosts(t *testing.T) {
	r, service, ingredients := setupTestRouter()
	ctx := context.Background()

	flour, err := ingredients.Create(ctx, ingredient.CreateInput{
		Name: "Flour", Unit: "kg", PackageSize: 1, Price: 1500,
	})
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}

	rec, err := service.Create(ctx, CreateInput{Name: "Cake"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := service.AddItem(ctx, rec.ID, AddItemInput{IngredientID: flour.ID, Quantity: 0.25}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/"+rec.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var detail Detail
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if detail.TotalCost != 375 {
		t.Fatalf("expected total cost 375, got %v", detail.TotalCost)
	}
	if math.Abs(detail.SuggestedPrice-375/0.3) > 1e-9 {
		t.Fatalf("expected default 30%% margin pricing, got %v", detail.SuggestedPrice)
	}
	if detail.Ingredients[0].UnitCost != 1500 {
		t.Fatalf("expected unit cost 1500, got %v", detail.Ingredients[0].UnitCost)
	}
}

func TestGetRecipeCustomMargin(t *testing.T) {
	r, service, ingredients := setupTestRouter()
	ctx := context.Background()

	flour, err := ingredients.Create(ctx, ingredient.CreateInput{
		Name: "Flour", Unit: "kg", PackageSize: 1, Price: 1500,
	})
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	rec, err := service.Create(ctx, CreateInput{Name: "Cake"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if _, err := service.AddItem(ctx, rec.ID, AddItemInput{IngredientID: flour.ID, Quantity: 0.25}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/"+rec.ID+"?margin=0.5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var detail Detail
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if detail.SuggestedPrice != 750 {
		t.Fatalf("expected 750 at 50%% margin, got %v", detail.SuggestedPrice)
	}
}

func TestGetRecipeRejectsBadMargin(t *testing.T) {
	r, service, _ := setupTestRouter()

	rec, err := service.Create(context.Background(), CreateInput{Name: "Cake"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	for _, raw := range []string{"0", "-0.2", "1.5", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes/"+rec.ID+"?margin="+raw, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("margin %q: expected status 400, got %d", raw, w.Code)
		}
	}
}

func TestAddItemEndpoint(t *testing.T) {
	r, service, _ := setupTestRouter()

	rec, err := service.Create(context.Background(), CreateInput{Name: "Cake"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	body, _ := json.Marshal(map[string]any{
		"ingredientId": "some-ingredient",
		"quantity":     0.5,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/"+rec.ID+"/ingredients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var item Item
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("line item must get an id")
	}
}

func TestAddItemToMissingRecipeEndpoint(t *testing.T) {
	r, _, _ := setupTestRouter()

	body, _ := json.Marshal(map[string]any{
		"ingredientId": "some-ingredient",
		"quantity":     0.5,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/missing/ingredients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestRemoveItemEndpoint(t *testing.T) {
	r, service, _ := setupTestRouter()
	ctx := context.Background()

	rec, err := service.Create(ctx, CreateInput{Name: "Cake"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	item, err := service.AddItem(ctx, rec.ID, AddItemInput{IngredientID: "x", Quantity: 1})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/"+rec.ID+"/ingredients/"+item.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	r, service, _ := setupTestRouter()

	rec, err := service.Create(context.Background(), CreateInput{Name: "Cake"})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/"+rec.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/recipes/"+rec.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", w.Code)
	}
}
