package recipe

// Recipe is a dish the galley can prepare.
type Recipe struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Servings    int             `json:"servings"`
	HealthScore *float64        `json:"health_score,omitempty"`
	Ingredients []IngredientRef `json:"ingredients,omitempty"`
}

// IngredientRef links a recipe to one catalog ingredient with the
// amount needed per serving, in the ingredient's catalog unit.
type IngredientRef struct {
	IngredientID     int     `json:"ingredient_id"`
	AmountPerServing float64 `json:"amount_per_serving"`
}
