package feedback

import "time"

// Feedback is one crew member's rating of one served meal.
// One row per (vessel, user, date, mealType); resubmits overwrite.
type Feedback struct {
	ID       int       `json:"id"`
	VesselID string    `json:"vessel_id"`
	UserID   string    `json:"user_id"`
	Date     time.Time `json:"date"`
	MealType string    `json:"meal_type"`
	Rating   int       `json:"rating"` // 1..5
	Comment  string    `json:"comment,omitempty"`
}

// Summary is the manager-facing rollup per meal type over a window.
type Summary struct {
	MealType  string  `json:"meal_type"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}
