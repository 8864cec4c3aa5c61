package feedback

import (
	"context"
	"time"
)

// Repository defines all database operations for meal feedback
type Repository interface {

	// Create OR overwrite this user's rating for the meal
	Upsert(ctx context.Context, f *Feedback) error

	// All ratings for a vessel inside [from, to]
	ListRange(ctx context.Context, vesselID string, from, to time.Time) ([]Feedback, error)
}
