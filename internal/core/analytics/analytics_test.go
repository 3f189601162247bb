package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// 2024-06-05 is a Wednesday; its Sunday-anchored week is 06-02..06-08.
const today = "2024-06-05"

var created = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func habit(t *testing.T, id string, dates ...string) *domain.Habit {
	t.Helper()
	h, err := domain.NewHabit(domain.HabitAttributes{Name: "habit " + id}, created)
	require.NoError(t, err)
	h.ID = id
	for _, d := range dates {
		h.CompletedDates[d] = 1
	}
	h.Recompute()
	return h
}

func weeklyHabit(t *testing.T, id string, perWeek int, dates ...string) *domain.Habit {
	t.Helper()
	h := habit(t, id, dates...)
	h.Frequency = domain.FrequencyWeekly
	h.DaysPerWeek = perWeek
	return h
}
