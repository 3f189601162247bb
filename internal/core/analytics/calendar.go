package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// Intensity buckets a day for heatmaps: 0 nothing done, then quarters up to 4.
func Intensity(s domain.DayStats) int {
	if s.Completed == 0 || s.Total == 0 {
		return 0
	}
	ratio := float64(s.Completed) / float64(s.Total)
	switch {
	case ratio <= 0.25:
		return 1
	case ratio <= 0.5:
		return 2
	case ratio <= 0.75:
		return 3
	default:
		return 4
	}
}

// MonthCalendar lays out a month grid. Offset is the number of blank cells
// before the 1st for a week that begins on weekStart.
func MonthCalendar(habits []*domain.Habit, year int, month time.Month, weekStart time.Weekday) domain.MonthCalendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	cal := domain.MonthCalendar{
		Year:   first.Year(),
		Month:  int(first.Month()),
		Offset: (int(first.Weekday()) - int(weekStart) + 7) % 7,
		Days:   make([]domain.CalendarDay, 0, last.Day()),
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cal.Days = append(cal.Days, calendarDay(habits, domain.FormatDate(d)))
	}
	return cal
}

// YearHeatmap returns one cell per day of year up to today; later days are
// left out because nothing can be recorded in the future.
func YearHeatmap(habits []*domain.Habit, year int, today string) []domain.CalendarDay {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if t, err := domain.ParseDate(today); err == nil && t.Before(last) {
		last = t
	}

	var days []domain.CalendarDay
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, calendarDay(habits, domain.FormatDate(d)))
	}
	return days
}

func calendarDay(habits []*domain.Habit, date string) domain.CalendarDay {
	stats := DayStats(habits, date)
	return domain.CalendarDay{
		Date:      date,
		Intensity: Intensity(stats),
		DayStats:  stats,
	}
}
