package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"Empty set", nil, 0},
		{"Only today", []string{today}, 1},
		{"Only yesterday keeps the streak alive", []string{"2024-06-04"}, 1},
		{"Two days ago is broken", []string{"2024-06-03"}, 0},
		{"Run ending today", []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", today}, 5},
		{"Run ending yesterday", []string{"2024-06-02", "2024-06-03", "2024-06-04"}, 3},
		{"Gap stops the walk", []string{"2024-06-01", "2024-06-03", "2024-06-04", today}, 3},
		{"Across month boundary", []string{"2024-05-30", "2024-05-31", "2024-06-01"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.CurrentStreak(analytics.NewDateSet(tt.dates...), today))
		})
	}

	t.Run("Run across month boundary ending today", func(t *testing.T) {
		dates := analytics.NewDateSet("2024-05-31", "2024-06-01")
		assert.Equal(t, 2, analytics.CurrentStreak(dates, "2024-06-01"))
	})
}

func TestBestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"Empty set", nil, 0},
		{"Three consecutive days", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, 3},
		{"Two separate runs of one", []string{"2024-01-01", "2024-01-03"}, 1},
		{"Final run is the longest", []string{"2024-01-01", "2024-01-05", "2024-01-06", "2024-01-07"}, 3},
		{"Unsorted input", []string{"2024-03-02", "2024-02-28", "2024-02-29", "2024-03-01"}, 4},
		{"Invalid keys are ignored", []string{"garbage", "2024-01-01"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.BestStreak(analytics.NewDateSet(tt.dates...)))
		})
	}
}

func TestCurrentNeverExceedsBest(t *testing.T) {
	sets := [][]string{
		{today},
		{"2024-06-04"},
		{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-06-04", today},
		{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", today},
		{"2023-12-31", "2024-06-03"},
	}

	for _, s := range sets {
		dates := analytics.NewDateSet(s...)
		assert.LessOrEqual(t, analytics.CurrentStreak(dates, today), analytics.BestStreak(dates), "dates %v", s)
	}
}

func TestPerfectDays(t *testing.T) {
	a := habit(t, "a", "2024-06-01", "2024-06-02", "2024-06-03")
	b := habit(t, "b", "2024-06-02", "2024-06-03", "2024-06-04")

	perfect := analytics.PerfectDays([]*domain.Habit{a, b})
	assert.Equal(t, analytics.NewDateSet("2024-06-02", "2024-06-03"), perfect)

	assert.Empty(t, analytics.PerfectDays(nil))

	// the intersection must not mutate the first habit's map
	assert.Len(t, a.CompletedDates, 3)
}

func TestStreaks(t *testing.T) {
	a := habit(t, "a", "2024-06-02", "2024-06-03", "2024-06-04", today)
	b := habit(t, "b", "2024-06-03", "2024-06-04")
	habits := []*domain.Habit{a, b}

	t.Run("Success: Single habit", func(t *testing.T) {
		s := analytics.Streaks(habits, "a", today)
		assert.Equal(t, domain.StreakSummary{HabitID: "a", Current: 4, Best: 4}, s)
	})

	t.Run("Success: Perfect day aggregate", func(t *testing.T) {
		// perfect days are 06-03 and 06-04; today is missing for b so the anchor is yesterday
		s := analytics.Streaks(habits, "", today)
		assert.Equal(t, 2, s.Current)
		assert.Equal(t, 2, s.Best)
	})

	t.Run("Unknown habit yields zeros", func(t *testing.T) {
		s := analytics.Streaks(habits, "missing", today)
		assert.Equal(t, 0, s.Current)
		assert.Equal(t, 0, s.Best)
	})

	t.Run("No habits", func(t *testing.T) {
		assert.Equal(t, domain.StreakSummary{}, analytics.Streaks(nil, "", today))
	})
}
