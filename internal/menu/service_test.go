package menu

import (
	"context"
	"testing"
	"time"

	"wellship/internal/ingredient"
	"wellship/internal/recipe"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockRepo struct {
	entries []PlanEntry
	nextID  int
}

func (m *mockRepo) UpsertEntry(ctx context.Context, e *PlanEntry) error {
	m.nextID++
	e.ID = m.nextID
	m.entries = append(m.entries, *e)
	return nil
}

func (m *mockRepo) ListRange(ctx context.Context, vesselID string, from, to time.Time) ([]PlanEntry, error) {
	var out []PlanEntry
	for _, e := range m.entries {
		if e.VesselID == vesselID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) ListDates(ctx context.Context, vesselID string) ([]time.Time, error) {
	var out []time.Time
	for _, e := range m.entries {
		out = append(out, e.Date)
	}
	return out, nil
}

func (m *mockRepo) SwapRecipe(ctx context.Context, vesselID string, entryID int, fromRecipeID, toRecipeID int) error {
	return nil
}

type mockCatalog struct {
	items []ingredient.Ingredient
}

func (m *mockCatalog) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	return m.items, nil
}

type mockCrews struct {
	count int
}

func (m *mockCrews) GetCrewCount(ctx context.Context, vesselID string) (int, error) {
	return m.count, nil
}

type mockRecipes struct {
	created []*recipe.Recipe
	nextID  int
}

func (m *mockRecipes) Create(ctx context.Context, r *recipe.Recipe) error {
	m.nextID++
	r.ID = m.nextID
	m.created = append(m.created, r)
	return nil
}

type stubClient struct {
	output string
}

func (s *stubClient) GeneratePlan(ctx context.Context, prompt string) (string, error) {
	return s.output, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

const planJSON = `{
	"days": [
		{
			"day": 1,
			"meals": [
				{
					"meal_type": "lunch",
					"recipe_name": "Fried Rice",
					"health_score": 7.0,
					"ingredients": [
						{"name": "Rice", "amount_per_serving": 0.2},
						{"name": "Moon Dust", "amount_per_serving": 1.0}
					]
				}
			]
		}
	]
}`

func newTestService(repo *mockRepo, recipes *mockRecipes, output string) *Service {
	catalog := &mockCatalog{items: []ingredient.Ingredient{
		{ID: 1, Name: "Rice", Unit: "kg", StorageType: ingredient.StorageDry},
	}}
	return NewService(repo, recipes, catalog, &mockCrews{count: 10}, &stubClient{output: output})
}

func TestGeneratePlan_PersistsEntriesAndRecipes(t *testing.T) {
	repo := &mockRepo{}
	recipes := &mockRecipes{}
	service := newTestService(repo, recipes, planJSON)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entries, err := service.GeneratePlan(context.Background(), "vessel-1", start, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if !e.Date.Equal(start) {
		t.Errorf("expected date %v, got %v", start, e.Date)
	}
	if e.MealType != MealLunch {
		t.Errorf("expected meal type lunch, got %s", e.MealType)
	}

	if len(recipes.created) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(recipes.created))
	}

	// "Moon Dust" is not in the catalog and must be dropped
	refs := recipes.created[0].Ingredients
	if len(refs) != 1 || refs[0].IngredientID != 1 {
		t.Errorf("expected only catalog ingredient Rice, got %+v", refs)
	}
}

func TestGeneratePlan_EmptyPlanFails(t *testing.T) {
	repo := &mockRepo{}
	service := newTestService(repo, &mockRecipes{}, `{"days": []}`)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.GeneratePlan(context.Background(), "vessel-1", start, 3)
	if err == nil {
		t.Fatal("expected error for empty generated plan")
	}
}

func TestGeneratePlan_InvalidDays(t *testing.T) {
	service := newTestService(&mockRepo{}, &mockRecipes{}, planJSON)

	_, err := service.GeneratePlan(
		context.Background(),
		"vessel-1",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		0,
	)
	if err == nil {
		t.Fatal("expected error for days < 1")
	}
}

func TestSwapRecipe_IdenticalRecipes(t *testing.T) {
	service := newTestService(&mockRepo{}, &mockRecipes{}, planJSON)

	err := service.SwapRecipe(context.Background(), "vessel-1", 1, 5, 5)
	if err == nil {
		t.Fatal("expected error for identical recipes")
	}
}
