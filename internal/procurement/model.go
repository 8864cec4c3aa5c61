package procurement

import "time"

const dateLayout = "2006-01-02"

// Adjustment is a manual override entered by a chef or manager for
// one ingredient over one date range. Keyed uniquely by
// (vessel, ingredient, startDate, endDate); upserts are last-write-wins.
type Adjustment struct {
	ID            int       `json:"id"`
	VesselID      string    `json:"vessel_id"`
	IngredientID  int       `json:"ingredient_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	PlannedAmount float64   `json:"planned_amount"`
	OrderAmount   float64   `json:"order_amount"`
	InStock       bool      `json:"in_stock"`
	UnitPrice     float64   `json:"unit_price"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Item is one aggregated ingredient line of the final order list.
// Derived, never persisted.
type Item struct {
	IngredientID  int     `json:"ingredient_id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	StorageType   string  `json:"storage_type"`
	PlannedAmount float64 `json:"planned_amount"`
	OrderAmount   float64 `json:"order_amount"`
	InStock       bool    `json:"in_stock"`
	UnitCost      float64 `json:"unit_cost"`
	Subtotal      float64 `json:"subtotal"`
	Adjusted      bool    `json:"adjusted"`
	PriceMissing  bool    `json:"price_missing,omitempty"`
}

// Coverage reports how much of the requested window was actually
// backed by plan data. Dates are YYYY-MM-DD; StartDate/EndDate are
// nil when nothing matched.
type Coverage struct {
	RequestedDays   int      `json:"requested_days"`
	EffectiveDays   *int     `json:"effective_days,omitempty"`
	MatchedDays     int      `json:"matched_days"`
	MatchedDates    []string `json:"matched_dates"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	CrewCount       int      `json:"crew_count"`
	BudgetPerPerson float64  `json:"budget_per_person"`
}

// Result is the consolidated order list plus its coverage report.
type Result struct {
	Items     []Item   `json:"items"`
	TotalCost float64  `json:"total_cost"`
	Coverage  Coverage `json:"coverage"`
	Message   string   `json:"message,omitempty"`
}

// Request asks for procurement over a window. StartDate nil means
// "latest available window".
type Request struct {
	VesselID      string
	StartDate     *time.Time
	RequestedDays int
	EffectiveDays *int
}

// day normalizes a timestamp to its UTC calendar day.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDay(t time.Time) string {
	return t.Format(dateLayout)
}
