package ingredient

import "context"

// Repository defines all database operations for the ingredient catalog
type Repository interface {
	List(ctx context.Context) ([]Ingredient, error)
	GetByIDs(ctx context.Context, ids []int) (map[int]Ingredient, error)
	Create(ctx context.Context, ing *Ingredient) error
}
