package analytics

import (
	"math"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// CompletionRate returns the average per-habit completion percentage (0..100)
// over period, or over custom when it is not nil. Days after today never count
// towards the possible total.
func CompletionRate(habits []*domain.Habit, period domain.Period, habitID string, custom *domain.DateRange, today string) int {
	r := PeriodRange(period, today)
	if custom != nil {
		r = *custom
	}
	return rateForRange(selectHabits(habits, habitID), r, today)
}

func rateForRange(habits []*domain.Habit, r domain.DateRange, today string) int {
	start, end, days := clipRange(r, today)
	if days <= 0 || len(habits) == 0 {
		return 0
	}

	var sum float64
	counted := 0
	for _, h := range habits {
		possible := PossibleCount(h, days)
		if possible <= 0 {
			continue
		}
		actual := countCompletions(h, start, end)
		sum += math.Min(1, float64(actual)/float64(possible))
		counted++
	}

	if counted == 0 {
		return 0
	}
	return int(math.Round(sum / float64(counted) * 100))
}

// PossibleCount is the number of completions h could have in a range of days.
// Weekly habits are pro-rated by their days per week, with at least one
// occasion whenever the range is not empty.
func PossibleCount(h *domain.Habit, days int) int {
	if days <= 0 {
		return 0
	}
	if h.Frequency != domain.FrequencyWeekly {
		return days
	}

	perWeek := h.DaysPerWeek
	if perWeek < 1 || perWeek > 7 {
		perWeek = 1
	}
	possible := int(math.Round(float64(days) / 7 * float64(perWeek)))
	return max(1, possible)
}

func countCompletions(h *domain.Habit, start, end string) int {
	n := 0
	for d, v := range h.CompletedDates {
		if v > 0 && d >= start && d <= end {
			n++
		}
	}
	return n
}
