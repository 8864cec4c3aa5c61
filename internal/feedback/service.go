package feedback

import (
	"context"
	"errors"
	"sort"
	"time"

	"wellship/internal/menu"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Crew submits (or corrects) a rating
// --------------------------------------------------
func (s *Service) Submit(ctx context.Context, f *Feedback) error {
	if f.VesselID == "" || f.UserID == "" {
		return errors.New("missing required fields")
	}
	if !menu.ValidMealType(f.MealType) {
		return errors.New("invalid meal type")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	return s.repo.Upsert(ctx, f)
}

// --------------------------------------------------
// Manager rollup per meal type over a window
// --------------------------------------------------
func (s *Service) Summarize(
	ctx context.Context,
	vesselID string,
	from, to time.Time,
) ([]Summary, error) {

	feedback, err := s.repo.ListRange(ctx, vesselID, from, to)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, f := range feedback {
		sums[f.MealType] += f.Rating
		counts[f.MealType]++
	}

	summaries := make([]Summary, 0, len(counts))
	for mealType, count := range counts {
		summaries = append(summaries, Summary{
			MealType:  mealType,
			AvgRating: float64(sums[mealType]) / float64(count),
			Count:     count,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].MealType < summaries[j].MealType
	})

	return summaries, nil
}
