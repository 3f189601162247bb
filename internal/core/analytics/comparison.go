package analytics

import "github.com/comitanigiacomo/kanso-tracker/internal/core/domain"

// Compare contrasts the completion rate of the current period to date with the
// same stretch of the previous period.
func Compare(habits []*domain.Habit, period domain.Period, habitID string, today string) domain.Comparison {
	if !period.IsValid() {
		period = domain.PeriodWeek
	}
	selected := selectHabits(habits, habitID)

	cur := PeriodRange(period, today)
	cur.End = today
	prev := domain.DateRange{
		Start: ShiftBack(period, cur.Start),
		End:   ShiftBack(period, today),
	}

	current := rateForRange(selected, cur, today)
	previous := rateForRange(selected, prev, today)

	return domain.Comparison{
		Period:   period,
		Current:  current,
		Previous: previous,
		Trend:    trendOf(current, previous),
		Range:    cur,
		Prior:    prev,
	}
}

func trendOf(current, previous int) domain.Trend {
	switch {
	case current > previous:
		return domain.TrendUp
	case current < previous:
		return domain.TrendDown
	default:
		return domain.TrendSame
	}
}
