package menu

import (
	"context"
	"time"
)

// Repository defines all database operations for menu plans
type Repository interface {

	// Create OR replace the entry for (vessel, date, mealType)
	UpsertEntry(ctx context.Context, e *PlanEntry) error

	// Entries for a vessel inside [from, to], both inclusive
	ListRange(ctx context.Context, vesselID string, from, to time.Time) ([]PlanEntry, error)

	// Distinct calendar days for which ANY plan entry exists,
	// ascending. This is the available-dates set coverage
	// resolution intersects with.
	ListDates(ctx context.Context, vesselID string) ([]time.Time, error)

	// Replace one recipe inside an entry (swap operation)
	SwapRecipe(ctx context.Context, vesselID string, entryID int, fromRecipeID, toRecipeID int) error
}
