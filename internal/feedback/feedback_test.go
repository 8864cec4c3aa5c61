package feedback

import (
	"context"
	"testing"
	"time"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	feedback []Feedback
	nextID   int
}

func (m *MockRepository) Upsert(ctx context.Context, f *Feedback) error {
	for i, existing := range m.feedback {
		if existing.VesselID == f.VesselID &&
			existing.UserID == f.UserID &&
			existing.Date.Equal(f.Date) &&
			existing.MealType == f.MealType {
			f.ID = existing.ID
			m.feedback[i] = *f
			return nil
		}
	}

	m.nextID++
	f.ID = m.nextID
	m.feedback = append(m.feedback, *f)
	return nil
}

func (m *MockRepository) ListRange(
	ctx context.Context,
	vesselID string,
	from, to time.Time,
) ([]Feedback, error) {
	var out []Feedback
	for _, f := range m.feedback {
		if f.VesselID == vesselID && !f.Date.Before(from) && !f.Date.After(to) {
			out = append(out, f)
		}
	}
	return out, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestSubmit_RejectsBadRating(t *testing.T) {
	service := NewService(&MockRepository{})

	for _, rating := range []int{0, 6, -1} {
		err := service.Submit(context.Background(), &Feedback{
			VesselID: "vessel-1",
			UserID:   "user-1",
			Date:     date("2024-06-01"),
			MealType: "lunch",
			Rating:   rating,
		})
		if err == nil {
			t.Errorf("rating %d: expected error", rating)
		}
	}
}

func TestSubmit_ResubmitOverwrites(t *testing.T) {
	repo := &MockRepository{}
	service := NewService(repo)

	f := &Feedback{
		VesselID: "vessel-1",
		UserID:   "user-1",
		Date:     date("2024-06-01"),
		MealType: "lunch",
		Rating:   2,
	}
	if err := service.Submit(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f2 := *f
	f2.Rating = 5
	if err := service.Submit(context.Background(), &f2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.feedback) != 1 {
		t.Fatalf("expected single row, got %d", len(repo.feedback))
	}
	if repo.feedback[0].Rating != 5 {
		t.Errorf("expected overwrite to 5, got %d", repo.feedback[0].Rating)
	}
}

func TestSummarize_GroupsByMealType(t *testing.T) {
	repo := &MockRepository{}
	service := NewService(repo)

	ratings := []struct {
		user     string
		mealType string
		rating   int
	}{
		{"user-1", "lunch", 4},
		{"user-2", "lunch", 2},
		{"user-1", "dinner", 5},
	}
	for _, r := range ratings {
		err := service.Submit(context.Background(), &Feedback{
			VesselID: "vessel-1",
			UserID:   r.user,
			Date:     date("2024-06-01"),
			MealType: r.mealType,
			Rating:   r.rating,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summaries, err := service.Summarize(
		context.Background(),
		"vessel-1",
		date("2024-06-01"),
		date("2024-06-07"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("expected 2 meal types, got %d", len(summaries))
	}

	// sorted by meal type: dinner, lunch
	if summaries[0].MealType != "dinner" || summaries[0].AvgRating != 5.0 {
		t.Errorf("unexpected dinner summary: %+v", summaries[0])
	}
	if summaries[1].MealType != "lunch" || summaries[1].AvgRating != 3.0 || summaries[1].Count != 2 {
		t.Errorf("unexpected lunch summary: %+v", summaries[1])
	}
}
