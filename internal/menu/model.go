package menu

import "time"

// Meal types a plan entry can cover.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// PlanEntry is one (vessel, date, mealType) slot of a generated menu.
// Created by generation, mutated only by swap/replace, read-only to
// procurement aggregation.
type PlanEntry struct {
	ID          int       `json:"id"`
	VesselID    string    `json:"vessel_id"`
	Date        time.Time `json:"date"`
	MealType    string    `json:"meal_type"`
	RecipeIDs   []int     `json:"recipe_ids"`
	HealthScore *float64  `json:"health_score,omitempty"`
}

func ValidMealType(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}
