package procurement

import (
	"context"
	"time"

	"wellship/internal/ingredient"
	"wellship/internal/menu"
	"wellship/internal/recipe"
)

// External collaborators the core consumes. The service depends ONLY
// on these interfaces; the concrete menu/vessel/ingredient/recipe
// repositories satisfy them.

type PlanReader interface {
	ListDates(ctx context.Context, vesselID string) ([]time.Time, error)
	ListRange(ctx context.Context, vesselID string, from, to time.Time) ([]menu.PlanEntry, error)
}

type CompositionReader interface {
	GetComposition(ctx context.Context, recipeIDs []int) (map[int][]recipe.IngredientRef, error)
}

type CrewCounter interface {
	GetCrewCount(ctx context.Context, vesselID string) (int, error)
}

type CatalogReader interface {
	List(ctx context.Context) ([]ingredient.Ingredient, error)
}

// AdjustmentStore is the one collaborator this package also
// implements (see repository_postgres.go). Upsert is idempotent on
// (vessel, ingredient, startDate, endDate) with last-write-wins
// semantics per key; the store never reconciles overlapping ranges,
// the engine's merge policy does.
type AdjustmentStore interface {
	Upsert(ctx context.Context, adj *Adjustment) error
	ListOverlapping(ctx context.Context, vesselID string, windowStart, windowEnd time.Time) ([]Adjustment, error)
}
