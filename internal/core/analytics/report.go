package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// RangeReport breaks an explicit date range down per habit: the value logged
// each day, the days on which the goal was met and the resulting rates.
func RangeReport(habits []*domain.Habit, from, to string) domain.RangeReport {
	report := domain.RangeReport{
		StartDate:   from,
		EndDate:     to,
		TotalHabits: len(habits),
		HabitStats:  make([]domain.HabitStat, 0, len(habits)),
	}

	startDate, err := domain.ParseDate(from)
	if err != nil {
		return report
	}
	endDate, err := domain.ParseDate(to)
	if err != nil {
		return report
	}

	totalDaysPossible := 0
	totalDaysCompleted := 0

	for _, h := range habits {
		hStat := domain.HabitStat{
			HabitID:       h.ID,
			HabitName:     h.Name,
			Icon:          h.Icon,
			Goal:          h.Goal,
			Unit:          h.Unit,
			DailyProgress: make([]float64, 0),
		}

		daysInPeriod := 0
		daysAchieved := 0

		for currentDate := startDate; !currentDate.After(endDate); currentDate = currentDate.AddDate(0, 0, 1) {
			val := h.CompletedDates[currentDate.Format(domain.DateLayout)]

			hStat.TotalValue += val
			hStat.DailyProgress = append(hStat.DailyProgress, val)

			if val > 0 && val >= h.Goal {
				daysAchieved++
				totalDaysCompleted++
			}

			daysInPeriod++
			totalDaysPossible++
		}

		hStat.DaysCompleted = daysAchieved
		if daysInPeriod > 0 {
			hStat.CompletionRate = float64(daysAchieved) / float64(daysInPeriod) * 100
		}

		report.HabitStats = append(report.HabitStats, hStat)
	}

	if totalDaysPossible > 0 {
		report.OverallRate = float64(totalDaysCompleted) / float64(totalDaysPossible) * 100
	}

	return report
}

// RangeDays returns the inclusive number of days between two dates, or -1
// when either date is invalid or the range is reversed.
func RangeDays(from, to string) int {
	start, err := domain.ParseDate(from)
	if err != nil {
		return -1
	}
	end, err := domain.ParseDate(to)
	if err != nil || end.Before(start) {
		return -1
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
