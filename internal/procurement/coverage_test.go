package procurement

import (
	"testing"
	"time"
)

func d(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dp(s string) *time.Time {
	t := d(s)
	return &t
}

func ip(v int) *int {
	return &v
}

func TestResolveWindow_FullMatch(t *testing.T) {
	available := []time.Time{d("2024-06-01"), d("2024-06-02"), d("2024-06-03")}

	w := ResolveWindow(dp("2024-06-01"), 3, nil, available)

	if len(w.MatchedDates) != 3 {
		t.Fatalf("expected 3 matched dates, got %d", len(w.MatchedDates))
	}
	if !w.Start.Equal(d("2024-06-01")) || !w.End.Equal(d("2024-06-03")) {
		t.Errorf("unexpected bounds: %v .. %v", w.Start, w.End)
	}
}

func TestResolveWindow_SparsePlanDates(t *testing.T) {
	// plan exists only on the 1st and 4th of a 5-day request
	available := []time.Time{d("2024-06-01"), d("2024-06-04"), d("2024-06-20")}

	w := ResolveWindow(dp("2024-06-01"), 5, nil, available)

	if len(w.MatchedDates) != 2 {
		t.Fatalf("expected 2 matched dates, got %d", len(w.MatchedDates))
	}
	if !w.MatchedDates[0].Equal(d("2024-06-01")) || !w.MatchedDates[1].Equal(d("2024-06-04")) {
		t.Errorf("unexpected matched dates: %v", w.MatchedDates)
	}
}

func TestResolveWindow_EffectiveDaysTruncatesFromFront(t *testing.T) {
	available := []time.Time{d("2024-06-01"), d("2024-06-02"), d("2024-06-03")}

	w := ResolveWindow(dp("2024-06-01"), 3, ip(2), available)

	if len(w.MatchedDates) != 2 {
		t.Fatalf("expected 2 matched dates, got %d", len(w.MatchedDates))
	}
	if !w.End.Equal(d("2024-06-02")) {
		t.Errorf("expected end 2024-06-02, got %v", w.End)
	}
}

func TestResolveWindow_NoIntersection(t *testing.T) {
	available := []time.Time{d("2024-06-01"), d("2024-06-02")}

	w := ResolveWindow(dp("2024-07-01"), 5, nil, available)

	if !w.Empty() {
		t.Fatalf("expected empty window, got %v", w.MatchedDates)
	}
	if w.Start != nil || w.End != nil {
		t.Errorf("expected nil bounds on empty window")
	}
}

func TestResolveWindow_NoAvailableDates(t *testing.T) {
	w := ResolveWindow(dp("2024-06-01"), 3, nil, nil)

	if !w.Empty() {
		t.Fatal("expected empty window")
	}
}

func TestResolveWindow_LatestWindowInference(t *testing.T) {
	available := []time.Time{
		d("2024-06-01"), d("2024-06-02"), d("2024-06-03"),
		d("2024-06-04"), d("2024-06-05"),
	}

	// nil start: most recent date minus (requestedDays-1)
	w := ResolveWindow(nil, 3, nil, available)

	if len(w.MatchedDates) != 3 {
		t.Fatalf("expected 3 matched dates, got %d", len(w.MatchedDates))
	}
	if !w.Start.Equal(d("2024-06-03")) || !w.End.Equal(d("2024-06-05")) {
		t.Errorf("unexpected bounds: %v .. %v", w.Start, w.End)
	}
}

func TestResolveWindow_LatestWindowClampedToEarliest(t *testing.T) {
	available := []time.Time{d("2024-06-01"), d("2024-06-02")}

	// requesting more days than exist: start clamps to earliest
	w := ResolveWindow(nil, 10, nil, available)

	if len(w.MatchedDates) != 2 {
		t.Fatalf("expected 2 matched dates, got %d", len(w.MatchedDates))
	}
	if !w.Start.Equal(d("2024-06-01")) {
		t.Errorf("expected start clamped to 2024-06-01, got %v", w.Start)
	}
}

func TestResolveWindow_UnsortedInput(t *testing.T) {
	available := []time.Time{d("2024-06-03"), d("2024-06-01"), d("2024-06-02")}

	w := ResolveWindow(dp("2024-06-01"), 3, nil, available)

	for i := 1; i < len(w.MatchedDates); i++ {
		if !w.MatchedDates[i-1].Before(w.MatchedDates[i]) {
			t.Fatalf("matched dates not ascending: %v", w.MatchedDates)
		}
	}
}

// Coverage bound: matchedDays <= min(requestedDays, effectiveDays)
func TestResolveWindow_CoverageBound(t *testing.T) {
	var available []time.Time
	for i := 1; i <= 20; i++ {
		available = append(available, d("2024-06-01").AddDate(0, 0, i-1))
	}

	cases := []struct {
		requested int
		effective *int
	}{
		{1, nil},
		{5, nil},
		{5, ip(3)},
		{20, ip(7)},
		{3, ip(10)},
	}

	for _, tc := range cases {
		w := ResolveWindow(dp("2024-06-01"), tc.requested, tc.effective, available)

		bound := tc.requested
		if tc.effective != nil && *tc.effective < bound {
			bound = *tc.effective
		}

		if len(w.MatchedDates) > bound {
			t.Errorf(
				"requested=%d effective=%v: matched %d exceeds bound %d",
				tc.requested, tc.effective, len(w.MatchedDates), bound,
			)
		}
	}
}

func TestWindowOverlaps(t *testing.T) {
	available := []time.Time{d("2024-06-01"), d("2024-06-02"), d("2024-06-03")}
	w := ResolveWindow(dp("2024-06-01"), 3, nil, available)

	if !w.Overlaps(d("2024-06-03"), d("2024-06-10")) {
		t.Error("expected overlap at window edge")
	}
	if w.Overlaps(d("2024-06-04"), d("2024-06-10")) {
		t.Error("expected no overlap past window end")
	}
	if w.Overlaps(d("2024-05-01"), d("2024-05-31")) {
		t.Error("expected no overlap before window start")
	}
}
