package analytics

import (
	"math"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

const (
	moodWeekDays  = 7
	moodMonthDays = 30
	moodYearMonth = 12
)

// MoodTrend averages mood scores per bucket: daily buckets for the last 7
// (week) or 30 (month) days, monthly buckets for the last 12 months (year).
// Buckets are ordered oldest first; Average 0 means no mood was logged.
func MoodTrend(notes []*domain.Note, period domain.Period, habitID string, today string) []domain.MoodPoint {
	t, err := domain.ParseDate(today)
	if err != nil {
		return nil
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	monthly := period == domain.PeriodYear
	for _, n := range notes {
		if n == nil || n.Mood == nil || !n.Mood.IsValid() {
			continue
		}
		if habitID != "" && n.HabitID != habitID {
			continue
		}
		if !domain.IsValidDate(n.Date) {
			continue
		}
		key := n.Date
		if monthly {
			key = n.Date[:7]
		}
		sums[key] += n.Mood.Score()
		counts[key]++
	}

	var points []domain.MoodPoint
	if monthly {
		thisMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i := moodYearMonth - 1; i >= 0; i-- {
			m := AddMonthsClamped(thisMonth, -i)
			key := m.Format("2006-01")
			points = append(points, moodPoint(m.Format("Jan"), domain.FormatDate(m), sums[key], counts[key]))
		}
		return points
	}

	days := moodWeekDays
	label := "Mon"
	if period == domain.PeriodMonth {
		days = moodMonthDays
		label = "Jan 2"
	}
	for i := days - 1; i >= 0; i-- {
		d := t.AddDate(0, 0, -i)
		key := domain.FormatDate(d)
		points = append(points, moodPoint(d.Format(label), key, sums[key], counts[key]))
	}
	return points
}

func moodPoint(label, date string, sum, count int) domain.MoodPoint {
	p := domain.MoodPoint{Label: label, Date: date, Count: count}
	if count > 0 {
		p.Average = int(math.Round(float64(sum) / float64(count)))
	}
	return p
}
