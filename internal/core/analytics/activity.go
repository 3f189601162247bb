package analytics

import (
	"math"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeeklyActivity returns one entry per day of the Sunday-anchored current week
// with the share of habits completed that day.
//
// Every habit counts in the denominator on every day, whatever its frequency.
func WeeklyActivity(habits []*domain.Habit, habitID string, today string) []domain.DayActivity {
	selected := selectHabits(habits, habitID)
	start := weekStartOf(today, time.Sunday)

	out := make([]domain.DayActivity, 7)
	for i := range out {
		date := domain.AddDays(start, i)
		out[i] = domain.DayActivity{
			Day:     dayLabels[i],
			Date:    date,
			Value:   DayStats(selected, date).Percentage,
			IsToday: date == today,
		}
	}
	return out
}

// DayStats counts how many habits have a positive value recorded on date.
func DayStats(habits []*domain.Habit, date string) domain.DayStats {
	stats := domain.DayStats{Total: len(habits)}
	for _, h := range habits {
		if h.IsCompletedOn(date) {
			stats.Completed++
		}
	}
	stats.Percentage = percentage(stats.Completed, stats.Total)
	return stats
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
