package procurement

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"wellship/internal/ingredient"
	"wellship/internal/menu"
	"wellship/internal/recipe"
)

type Service struct {
	plans       PlanReader
	composition CompositionReader
	crews       CrewCounter
	catalog     CatalogReader
	adjustments AdjustmentStore
}

func NewService(
	plans PlanReader,
	composition CompositionReader,
	crews CrewCounter,
	catalog CatalogReader,
	adjustments AdjustmentStore,
) *Service {
	return &Service{
		plans:       plans,
		composition: composition,
		crews:       crews,
		catalog:     catalog,
		adjustments: adjustments,
	}
}

// --------------------------------------------------
// Generate the consolidated order list
// --------------------------------------------------
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {

	// Validation happens before ANY collaborator is touched
	if req.VesselID == "" {
		return nil, &ValidationError{Field: "vesselId", Reason: "is required"}
	}
	if req.RequestedDays < 1 {
		return nil, &ValidationError{Field: "requestedDays", Reason: "must be at least 1"}
	}
	if req.EffectiveDays != nil && *req.EffectiveDays < 1 {
		return nil, &ValidationError{Field: "effectiveDays", Reason: "must be at least 1 when present"}
	}

	available, err := s.plans.ListDates(ctx, req.VesselID)
	if err != nil {
		return nil, fmt.Errorf("fetch plan dates: %w", err)
	}

	window := ResolveWindow(req.StartDate, req.RequestedDays, req.EffectiveDays, available)

	if window.Empty() {
		// Normal "nothing to aggregate" outcome, never an error
		crewCount, err := s.crews.GetCrewCount(ctx, req.VesselID)
		if err != nil {
			return nil, fmt.Errorf("fetch crew count: %w", err)
		}
		return &Result{
			Items:     []Item{},
			TotalCost: 0,
			Coverage:  coverageReport(window, req.RequestedDays, req.EffectiveDays, crewCount, 0),
			Message:   MsgNoPlanData,
		}, nil
	}

	// Remaining reads are independent; fetch them in parallel but
	// complete ALL of them before aggregation starts.
	var (
		crewCount   int
		entries     []menu.PlanEntry
		composition map[int][]recipe.IngredientRef
		catalog     []ingredient.Ingredient
		adjustments []Adjustment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		crewCount, err = s.crews.GetCrewCount(gctx, req.VesselID)
		if err != nil {
			return fmt.Errorf("fetch crew count: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		entries, err = s.plans.ListRange(gctx, req.VesselID, *window.Start, *window.End)
		if err != nil {
			return fmt.Errorf("fetch plan entries: %w", err)
		}

		recipeIDs := collectRecipeIDs(entries)
		composition, err = s.composition.GetComposition(gctx, recipeIDs)
		if err != nil {
			return fmt.Errorf("fetch recipe composition: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		catalog, err = s.catalog.List(gctx)
		if err != nil {
			return fmt.Errorf("fetch ingredient catalog: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		adjustments, err = s.adjustments.ListOverlapping(gctx, req.VesselID, *window.Start, *window.End)
		if err != nil {
			return fmt.Errorf("fetch adjustments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, totalCost := Aggregate(AggregateInput{
		Window:      window,
		CrewCount:   crewCount,
		Entries:     entries,
		Composition: composition,
		Catalog:     catalog,
		Adjustments: adjustments,
	})

	log.Printf(
		"[PROCUREMENT] vessel=%s matched=%d items=%d total=%.2f",
		req.VesselID, len(window.MatchedDates), len(items), totalCost,
	)

	return &Result{
		Items:     items,
		TotalCost: totalCost,
		Coverage:  coverageReport(window, req.RequestedDays, req.EffectiveDays, crewCount, totalCost),
	}, nil
}

// --------------------------------------------------
// Save a manual adjustment (CHEF / MANAGER)
// --------------------------------------------------
func (s *Service) SaveAdjustment(ctx context.Context, adj *Adjustment) error {
	if adj.VesselID == "" {
		return &ValidationError{Field: "vesselId", Reason: "is required"}
	}
	if adj.IngredientID <= 0 {
		return &ValidationError{Field: "ingredientId", Reason: "is required"}
	}
	if adj.EndDate.Before(adj.StartDate) {
		return &ValidationError{Field: "endDate", Reason: "precedes startDate"}
	}
	if adj.OrderAmount < 0 || adj.PlannedAmount < 0 {
		return &ValidationError{Field: "amount", Reason: "cannot be negative"}
	}
	if adj.UnitPrice < 0 {
		return &ValidationError{Field: "unitPrice", Reason: "cannot be negative"}
	}

	adj.StartDate = day(adj.StartDate)
	adj.EndDate = day(adj.EndDate)

	return s.adjustments.Upsert(ctx, adj)
}

func collectRecipeIDs(entries []menu.PlanEntry) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, e := range entries {
		for _, id := range e.RecipeIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
