package llm

import (
	"context"
	"encoding/json"
	"errors"
)

type GeneratedPlan struct {
	Days []GeneratedDay `json:"days"`
}

type GeneratedDay struct {
	Day   int             `json:"day"`
	Meals []GeneratedMeal `json:"meals"`
}

type GeneratedMeal struct {
	MealType    string                `json:"meal_type"`
	RecipeName  string                `json:"recipe_name"`
	HealthScore float64               `json:"health_score"`
	Ingredients []GeneratedIngredient `json:"ingredients"`
}

type GeneratedIngredient struct {
	Name             string  `json:"name"`
	AmountPerServing float64 `json:"amount_per_serving"`
}

func ParsePlan(
	ctx context.Context,
	client Client,
	prompt string,
) (*GeneratedPlan, error) {

	rawJSON, err := client.GeneratePlan(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(rawJSON), &plan); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	return &plan, nil
}
