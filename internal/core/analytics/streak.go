package analytics

import (
	"sort"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// DateSet is a set of YYYY-MM-DD dates.
type DateSet map[string]struct{}

func NewDateSet(dates ...string) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

func (s DateSet) Has(date string) bool {
	_, ok := s[date]
	return ok
}

// DatesOf returns the dates on which h has a positive recorded value.
func DatesOf(h *domain.Habit) DateSet {
	s := make(DateSet, len(h.CompletedDates))
	for d, v := range h.CompletedDates {
		if v > 0 {
			s[d] = struct{}{}
		}
	}
	return s
}

// CurrentStreak counts consecutive days ending today, or ending yesterday when
// today has not been recorded yet.
func CurrentStreak(dates DateSet, today string) int {
	if len(dates) == 0 {
		return 0
	}

	anchor := today
	if !dates.Has(anchor) {
		anchor = domain.AddDays(today, -1)
	}

	streak := 0
	for dates.Has(anchor) {
		streak++
		anchor = domain.AddDays(anchor, -1)
	}
	return streak
}

// BestStreak returns the longest run of consecutive days in dates.
func BestStreak(dates DateSet) int {
	sorted := make([]string, 0, len(dates))
	for d := range dates {
		if domain.IsValidDate(d) {
			sorted = append(sorted, d)
		}
	}
	if len(sorted) == 0 {
		return 0
	}
	sort.Strings(sorted)

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if domain.AddDays(sorted[i-1], 1) == sorted[i] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// PerfectDays returns the dates on which every habit has a completion.
func PerfectDays(habits []*domain.Habit) DateSet {
	if len(habits) == 0 {
		return DateSet{}
	}

	perfect := DatesOf(habits[0])
	for _, h := range habits[1:] {
		for d := range perfect {
			if !h.IsCompletedOn(d) {
				delete(perfect, d)
			}
		}
	}
	return perfect
}

func HabitStreak(h *domain.Habit, today string) domain.StreakSummary {
	dates := DatesOf(h)
	return domain.StreakSummary{
		HabitID: h.ID,
		Current: CurrentStreak(dates, today),
		Best:    BestStreak(dates),
	}
}

// Streaks computes streaks for one habit, or for the "perfect day" aggregate
// of all habits when habitID is empty.
func Streaks(habits []*domain.Habit, habitID string, today string) domain.StreakSummary {
	selected := selectHabits(habits, habitID)
	if habitID != "" {
		if len(selected) == 0 {
			return domain.StreakSummary{HabitID: habitID}
		}
		return HabitStreak(selected[0], today)
	}

	dates := PerfectDays(selected)
	return domain.StreakSummary{
		Current: CurrentStreak(dates, today),
		Best:    BestStreak(dates),
	}
}
