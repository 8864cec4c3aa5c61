package llm

import (
	"fmt"
	"strings"
)

// BuildMenuPlanPrompt asks for a multi-day shipboard menu as strict JSON.
// availableIngredients lists catalog names the plan must draw from.
func BuildMenuPlanPrompt(
	days int,
	crewCount int,
	availableIngredients []string,
) string {

	return fmt.Sprintf(`
You are a ship galley menu planner.

Your task:
- Produce a %d-day menu for a crew of %d.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.
- Use ONLY ingredient names from the list below.

If you cannot produce a plan, return this exact JSON:
{
  "days": []
}

Required JSON schema:
{
  "days": [
    {
      "day": 1,
      "meals": [
        {
          "meal_type": "breakfast | lunch | dinner",
          "recipe_name": "string",
          "health_score": number,
          "ingredients": [
            {
              "name": "string",
              "amount_per_serving": number
            }
          ]
        }
      ]
    }
  ]
}

AVAILABLE INGREDIENTS:
`+strings.Join(availableIngredients, "\n"), days, crewCount)
}
