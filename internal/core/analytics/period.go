package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// PeriodRange returns the full calendar range of period containing today.
// Weeks start on Sunday, months on the 1st and years on January 1st.
// Unknown periods fall back to the week.
func PeriodRange(period domain.Period, today string) domain.DateRange {
	t, err := domain.ParseDate(today)
	if err != nil {
		return domain.DateRange{}
	}

	var start, end time.Time
	switch period {
	case domain.PeriodMonth:
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case domain.PeriodYear:
		start = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		start = t.AddDate(0, 0, -int(t.Weekday()))
		end = start.AddDate(0, 0, 6)
	}

	return domain.DateRange{Start: domain.FormatDate(start), End: domain.FormatDate(end)}
}

// ShiftBack moves date one period into the past with calendar-correct
// arithmetic: months and years clamp to the last valid day of the target
// month, so March 31st becomes February 28th (29th in leap years).
func ShiftBack(period domain.Period, date string) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}

	switch period {
	case domain.PeriodMonth:
		return domain.FormatDate(AddMonthsClamped(t, -1))
	case domain.PeriodYear:
		return domain.FormatDate(AddMonthsClamped(t, -12))
	default:
		return domain.FormatDate(t.AddDate(0, 0, -7))
	}
}

// AddMonthsClamped adds months to t without overflowing into the following
// month, unlike time.AddDate which turns Feb 31 into Mar 2.
func AddMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(t.Day(), lastDay), 0, 0, 0, 0, time.UTC)
}

// clipRange bounds r by today and returns the inclusive day count.
func clipRange(r domain.DateRange, today string) (string, string, int) {
	start, err := domain.ParseDate(r.Start)
	if err != nil {
		return "", "", 0
	}
	end, err := domain.ParseDate(r.End)
	if err != nil {
		return "", "", 0
	}
	if t, err := domain.ParseDate(today); err == nil && end.After(t) {
		end = t
	}
	if end.Before(start) {
		return "", "", 0
	}
	return domain.FormatDate(start), domain.FormatDate(end), domain.DaysBetween(start, end) + 1
}

func weekStartOf(date string, weekStart time.Weekday) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return domain.FormatDate(t.AddDate(0, 0, -offset))
}

func selectHabits(habits []*domain.Habit, habitID string) []*domain.Habit {
	if habitID == "" {
		return habits
	}
	for _, h := range habits {
		if h != nil && h.ID == habitID {
			return []*domain.Habit{h}
		}
	}
	return nil
}
