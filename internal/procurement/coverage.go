package procurement

import (
	"sort"
	"time"
)

// Window is the resolved coverage of a request: the calendar days
// inside the requested range that a plan entry actually exists for,
// ascending, possibly truncated by an effectiveDays cap.
type Window struct {
	MatchedDates []time.Time
	Start        *time.Time
	End          *time.Time
}

func (w Window) Empty() bool {
	return len(w.MatchedDates) == 0
}

// Contains reports whether d (a calendar day) is one of the matched days.
func (w Window) Contains(d time.Time) bool {
	d = day(d)
	for _, m := range w.MatchedDates {
		if m.Equal(d) {
			return true
		}
	}
	return false
}

// Overlaps reports whether [from, to] intersects the resolved window.
func (w Window) Overlaps(from, to time.Time) bool {
	if w.Empty() {
		return false
	}
	return !day(from).After(*w.End) && !day(to).Before(*w.Start)
}

// ResolveWindow intersects the requested window with the set of days
// plan data exists for.
//
// startDate nil means "latest available window": the most recent plan
// date minus (requestedDays-1), clamped to the earliest plan date.
// effectiveDays, if set, truncates the matched set to its first N
// elements; it caps the output, it does not move the window.
//
// An empty result is a normal outcome, not an error.
func ResolveWindow(
	startDate *time.Time,
	requestedDays int,
	effectiveDays *int,
	available []time.Time,
) Window {

	if requestedDays < 1 || len(available) == 0 {
		return Window{}
	}

	days := make([]time.Time, len(available))
	for i, d := range available {
		days[i] = day(d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var start time.Time
	if startDate != nil {
		start = day(*startDate)
	} else {
		latest := days[len(days)-1]
		start = latest.AddDate(0, 0, -(requestedDays - 1))
		if earliest := days[0]; start.Before(earliest) {
			start = earliest
		}
	}
	end := start.AddDate(0, 0, requestedDays-1)

	var matched []time.Time
	for _, d := range days {
		if d.Before(start) || d.After(end) {
			continue
		}
		matched = append(matched, d)
	}

	if effectiveDays != nil && len(matched) > *effectiveDays {
		matched = matched[:*effectiveDays]
	}

	if len(matched) == 0 {
		return Window{}
	}

	first := matched[0]
	last := matched[len(matched)-1]
	return Window{
		MatchedDates: matched,
		Start:        &first,
		End:          &last,
	}
}

// coverageReport shapes a Window into the report the caller sees.
func coverageReport(
	w Window,
	requestedDays int,
	effectiveDays *int,
	crewCount int,
	totalCost float64,
) Coverage {

	cov := Coverage{
		RequestedDays: requestedDays,
		EffectiveDays: effectiveDays,
		MatchedDays:   len(w.MatchedDates),
		MatchedDates:  []string{},
		CrewCount:     crewCount,
	}

	for _, d := range w.MatchedDates {
		cov.MatchedDates = append(cov.MatchedDates, formatDay(d))
	}

	if !w.Empty() {
		start := formatDay(*w.Start)
		end := formatDay(*w.End)
		cov.StartDate = &start
		cov.EndDate = &end

		if crewCount > 0 {
			cov.BudgetPerPerson = totalCost / float64(crewCount) / float64(cov.MatchedDays)
		}
	}

	return cov
}
