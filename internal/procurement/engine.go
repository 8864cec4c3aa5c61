package procurement

import (
	"fmt"
	"log"
	"sort"

	"wellship/internal/ingredient"
	"wellship/internal/menu"
	"wellship/internal/recipe"
)

// AggregateInput carries everything the engine consumes. All fields
// are fetched before aggregation starts; the engine does no I/O of
// its own.
type AggregateInput struct {
	Window      Window
	CrewCount   int
	Entries     []menu.PlanEntry
	Composition map[int][]recipe.IngredientRef
	Catalog     []ingredient.Ingredient
	Adjustments []Adjustment
}

// Aggregate sums per-serving amounts × crew count over every matched
// plan entry, grouped by ingredient for the whole window, then merges
// adjustment overrides and computes costs.
//
// Zero matched entries yields an empty item list, never an error.
func Aggregate(in AggregateInput) ([]Item, float64) {
	if in.Window.Empty() {
		return []Item{}, 0
	}

	// Base amount per ingredient across all matched (date, meal, recipe)
	base := make(map[int]float64)
	for _, entry := range in.Entries {
		if !in.Window.Contains(entry.Date) {
			continue
		}
		for _, recipeID := range entry.RecipeIDs {
			for _, ref := range in.Composition[recipeID] {
				base[ref.IngredientID] += ref.AmountPerServing * float64(in.CrewCount)
			}
		}
	}

	// One winning adjustment per ingredient: most recently written
	// wins, id as the final tie-break. Ranges outside the resolved
	// window are ignored, not errors.
	winning := make(map[int]Adjustment)
	for _, adj := range in.Adjustments {
		if !in.Window.Overlaps(adj.StartDate, adj.EndDate) {
			continue
		}
		current, ok := winning[adj.IngredientID]
		if !ok ||
			adj.UpdatedAt.After(current.UpdatedAt) ||
			(adj.UpdatedAt.Equal(current.UpdatedAt) && adj.ID > current.ID) {
			winning[adj.IngredientID] = adj
		}
	}

	catalog := make(map[int]ingredient.Ingredient, len(in.Catalog))
	for _, ing := range in.Catalog {
		catalog[ing.ID] = ing
	}

	// Ingredients with zero computed amount AND no adjustment are omitted
	touched := make(map[int]bool)
	for id, amount := range base {
		if amount > 0 {
			touched[id] = true
		}
	}
	for id := range winning {
		touched[id] = true
	}

	items := make([]Item, 0, len(touched))
	total := 0.0

	for id := range touched {
		ing, known := catalog[id]
		if !known {
			// A stale adjustment can outlive its catalog entry; keep
			// the row visible instead of emitting a nameless one.
			log.Printf("[PROCUREMENT] ingredient %d missing from catalog, labeling row", id)
			ing.Name = fmt.Sprintf("unknown ingredient #%d", id)
		}

		item := Item{
			IngredientID:  id,
			Name:          ing.Name,
			Unit:          ing.Unit,
			StorageType:   ing.StorageType,
			PlannedAmount: base[id],
			OrderAmount:   base[id],
		}

		if adj, ok := winning[id]; ok {
			// plannedAmount stays the computed base; the override
			// replaces orderAmount, inStock, and the price only.
			item.OrderAmount = adj.OrderAmount
			item.InStock = adj.InStock
			item.UnitCost = adj.UnitPrice
			item.Adjusted = true
		} else if ing.RefUnitPrice != nil {
			item.UnitCost = *ing.RefUnitPrice
		} else {
			// Missing price is per-item, non-fatal
			item.UnitCost = 0
			item.PriceMissing = true
		}

		item.Subtotal = item.OrderAmount * item.UnitCost
		total += item.Subtotal

		items = append(items, item)
	}

	// Stable, testable ordering for UI and CSV rendering
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].IngredientID < items[j].IngredientID
	})

	return items, total
}
