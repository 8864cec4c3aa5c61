package recipe

import "context"

// Repository defines all database operations for recipes
type Repository interface {
	Create(ctx context.Context, r *Recipe) error
	GetByID(ctx context.Context, recipeID int) (*Recipe, error)

	// GetComposition resolves recipe → per-serving ingredient amounts
	// for a batch of recipe ids in one round trip.
	GetComposition(ctx context.Context, recipeIDs []int) (map[int][]IngredientRef, error)
}
