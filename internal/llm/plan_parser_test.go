package llm

import (
	"context"
	"errors"
	"testing"
)

type stubClient struct {
	output string
	err    error
}

func (s *stubClient) GeneratePlan(ctx context.Context, prompt string) (string, error) {
	return s.output, s.err
}

func TestParsePlan_ValidJSON(t *testing.T) {
	client := &stubClient{output: `{
		"days": [
			{
				"day": 1,
				"meals": [
					{
						"meal_type": "lunch",
						"recipe_name": "Fried Rice",
						"health_score": 7.5,
						"ingredients": [
							{"name": "Rice", "amount_per_serving": 0.2}
						]
					}
				]
			}
		]
	}`}

	plan, err := ParsePlan(context.Background(), client, "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(plan.Days))
	}

	meal := plan.Days[0].Meals[0]
	if meal.RecipeName != "Fried Rice" {
		t.Errorf("expected recipe 'Fried Rice', got %q", meal.RecipeName)
	}
	if meal.Ingredients[0].AmountPerServing != 0.2 {
		t.Errorf("expected amount 0.2, got %v", meal.Ingredients[0].AmountPerServing)
	}
}

func TestParsePlan_InvalidJSON(t *testing.T) {
	client := &stubClient{output: `not json at all`}

	_, err := ParsePlan(context.Background(), client, "prompt")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParsePlan_ClientError(t *testing.T) {
	client := &stubClient{err: errors.New("upstream down")}

	_, err := ParsePlan(context.Background(), client, "prompt")
	if err == nil {
		t.Fatal("expected error when client fails")
	}
}
