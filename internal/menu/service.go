package menu

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"wellship/internal/ingredient"
	"wellship/internal/llm"
	"wellship/internal/recipe"
)

type CatalogReader interface {
	List(ctx context.Context) ([]ingredient.Ingredient, error)
}

type CrewCounter interface {
	GetCrewCount(ctx context.Context, vesselID string) (int, error)
}

type RecipeWriter interface {
	Create(ctx context.Context, r *recipe.Recipe) error
}

type Service struct {
	repo    Repository
	recipes RecipeWriter
	catalog CatalogReader
	crews   CrewCounter
	client  llm.Client
}

func NewService(
	repo Repository,
	recipes RecipeWriter,
	catalog CatalogReader,
	crews CrewCounter,
	client llm.Client,
) *Service {
	return &Service{
		repo:    repo,
		recipes: recipes,
		catalog: catalog,
		crews:   crews,
		client:  client,
	}
}

// --------------------------------------------------
// Generate a multi-day menu plan (CHEF)
// --------------------------------------------------
func (s *Service) GeneratePlan(
	ctx context.Context,
	vesselID string,
	startDate time.Time,
	days int,
) ([]PlanEntry, error) {

	if vesselID == "" {
		return nil, errors.New("vessel is required")
	}
	if days < 1 {
		return nil, errors.New("days must be at least 1")
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch ingredient catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, errors.New("ingredient catalog is empty")
	}

	crewCount, err := s.crews.GetCrewCount(ctx, vesselID)
	if err != nil {
		return nil, fmt.Errorf("fetch crew count: %w", err)
	}

	names := make([]string, 0, len(catalog))
	nameToID := make(map[string]int, len(catalog))
	for _, ing := range catalog {
		names = append(names, ing.Name)
		nameToID[ing.Name] = ing.ID
	}

	prompt := llm.BuildMenuPlanPrompt(days, crewCount, names)

	plan, err := llm.ParsePlan(ctx, s.client, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate menu plan: %w", err)
	}
	if len(plan.Days) == 0 {
		return nil, errors.New("generator returned an empty plan")
	}

	var entries []PlanEntry

	for _, day := range plan.Days {
		if day.Day < 1 || day.Day > days {
			continue
		}
		date := startDate.AddDate(0, 0, day.Day-1)

		for _, meal := range day.Meals {
			if !ValidMealType(meal.MealType) {
				log.Printf("[MENU] skipping unknown meal type %q", meal.MealType)
				continue
			}

			var refs []recipe.IngredientRef
			for _, gi := range meal.Ingredients {
				id, ok := nameToID[gi.Name]
				if !ok {
					log.Printf("[MENU] ingredient %q not in catalog, dropped", gi.Name)
					continue
				}
				refs = append(refs, recipe.IngredientRef{
					IngredientID:     id,
					AmountPerServing: gi.AmountPerServing,
				})
			}

			score := meal.HealthScore
			rec := &recipe.Recipe{
				Name:        meal.RecipeName,
				Servings:    1,
				HealthScore: &score,
				Ingredients: refs,
			}
			if err := s.recipes.Create(ctx, rec); err != nil {
				return nil, fmt.Errorf("save recipe %q: %w", rec.Name, err)
			}

			entry := PlanEntry{
				VesselID:    vesselID,
				Date:        date,
				MealType:    meal.MealType,
				RecipeIDs:   []int{rec.ID},
				HealthScore: &score,
			}
			if err := s.repo.UpsertEntry(ctx, &entry); err != nil {
				return nil, fmt.Errorf("save plan entry: %w", err)
			}
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, errors.New("generator produced no usable entries")
	}

	log.Printf("[MENU] generated %d entries for vessel %s", len(entries), vesselID)
	return entries, nil
}

// --------------------------------------------------
// Read a plan window
// --------------------------------------------------
func (s *Service) GetPlan(
	ctx context.Context,
	vesselID string,
	from, to time.Time,
) ([]PlanEntry, error) {
	return s.repo.ListRange(ctx, vesselID, from, to)
}

// --------------------------------------------------
// Swap one recipe on an entry (CHEF)
// --------------------------------------------------
func (s *Service) SwapRecipe(
	ctx context.Context,
	vesselID string,
	entryID int,
	fromRecipeID, toRecipeID int,
) error {

	if fromRecipeID == toRecipeID {
		return errors.New("recipes are identical")
	}

	return s.repo.SwapRecipe(ctx, vesselID, entryID, fromRecipeID, toRecipeID)
}
