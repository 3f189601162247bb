package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

const today = "2024-06-15"

func newHabit(t *testing.T, attrs domain.HabitAttributes) *domain.Habit {
	t.Helper()
	h, err := domain.NewHabit(attrs, now)
	require.NoError(t, err)
	return h
}

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates valid habit with defaults", func(t *testing.T) {
		h, err := domain.NewHabit(domain.HabitAttributes{Name: "  Drink Water  "}, now)

		require.NoError(t, err)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, "Drink Water", h.Name)
		assert.Equal(t, domain.MetricBoolean, h.MetricType)
		assert.Equal(t, 1.0, h.Goal)
		assert.Equal(t, domain.FrequencyDaily, h.Frequency)
		assert.Equal(t, 7, h.DaysPerWeek)
		assert.Equal(t, domain.DefaultIcon, h.Icon)
		assert.Equal(t, domain.DefaultCategory, h.Category)
		assert.NotNil(t, h.CompletedDates)
		assert.Equal(t, 0, h.CompletedDays)
		assert.Equal(t, now, h.CreatedAt)
	})

	t.Run("Error: Empty Name", func(t *testing.T) {
		_, err := domain.NewHabit(domain.HabitAttributes{Name: "   "}, now)
		assert.Equal(t, domain.ErrHabitNameEmpty, err)
	})
}

func TestHabit_Validation(t *testing.T) {
	tests := []struct {
		name     string
		attrs    domain.HabitAttributes
		wantErr  error
		wantGoal float64
		wantDays int
		wantUnit string
	}{
		{
			name:     "Success: Boolean forces goal to 1",
			attrs:    domain.HabitAttributes{Name: "No sugar", MetricType: domain.MetricBoolean, Goal: 40},
			wantGoal: 1,
			wantDays: 7,
			wantUnit: domain.DefaultUnit,
		},
		{
			name:     "Success: Weekly keeps days per week",
			attrs:    domain.HabitAttributes{Name: "Gym", MetricType: domain.MetricMinutes, Goal: 45, Frequency: domain.FrequencyWeekly, DaysPerWeek: 3},
			wantGoal: 45,
			wantDays: 3,
			wantUnit: "min",
		},
		{
			name:     "Success: Weekly defaults to once a week",
			attrs:    domain.HabitAttributes{Name: "Call mom", Frequency: domain.FrequencyWeekly},
			wantGoal: 1,
			wantDays: 1,
			wantUnit: domain.DefaultUnit,
		},
		{
			name:     "Success: Daily forces seven days",
			attrs:    domain.HabitAttributes{Name: "Walk", MetricType: domain.MetricSteps, Goal: 8000, DaysPerWeek: 2},
			wantGoal: 8000,
			wantDays: 7,
			wantUnit: "steps",
		},
		{
			name:    "Error: Name too long",
			attrs:   domain.HabitAttributes{Name: strings.Repeat("a", 101)},
			wantErr: domain.ErrHabitNameTooLong,
		},
		{
			name:    "Error: Non-positive goal",
			attrs:   domain.HabitAttributes{Name: "Read", MetricType: domain.MetricCount, Goal: 0},
			wantErr: domain.ErrInvalidGoal,
		},
		{
			name:    "Error: Unknown metric",
			attrs:   domain.HabitAttributes{Name: "Read", MetricType: "pages"},
			wantErr: domain.ErrInvalidMetricType,
		},
		{
			name:    "Error: Unknown frequency",
			attrs:   domain.HabitAttributes{Name: "Read", Frequency: "hourly"},
			wantErr: domain.ErrInvalidFrequency,
		},
		{
			name:    "Error: Days per week out of range",
			attrs:   domain.HabitAttributes{Name: "Read", Frequency: domain.FrequencyWeekly, DaysPerWeek: 8},
			wantErr: domain.ErrInvalidDaysPerWeek,
		},
		{
			name:    "Error: Bad reminder",
			attrs:   domain.HabitAttributes{Name: "Read", NotificationEnabled: true, NotificationTime: "25:00"},
			wantErr: domain.ErrInvalidReminder,
		},
		{
			name:    "Error: Reminder enabled without time",
			attrs:   domain.HabitAttributes{Name: "Read", NotificationEnabled: true},
			wantErr: domain.ErrReminderWithoutTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := domain.NewHabit(tt.attrs, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantGoal, h.Goal)
			assert.Equal(t, tt.wantDays, h.DaysPerWeek)
			assert.Equal(t, tt.wantUnit, h.Unit)
		})
	}
}

func TestHabit_Update(t *testing.T) {
	h := newHabit(t, domain.HabitAttributes{Name: "Read", NotificationEnabled: true, NotificationTime: "08:00"})
	h.NotificationID = "reminder-1"
	later := now.Add(time.Hour)

	attrs := h.Attributes()
	attrs.Name = "Read more"
	attrs.NotificationEnabled = false

	require.NoError(t, h.Update(attrs, later))
	assert.Equal(t, "Read more", h.Name)
	assert.Empty(t, h.NotificationID, "disabling notifications drops the scheduled id")
	assert.Equal(t, later, h.UpdatedAt)

	attrs.Name = ""
	assert.ErrorIs(t, h.Update(attrs, later), domain.ErrHabitNameEmpty)
	assert.Equal(t, "Read more", h.Name, "failed update must not change the habit")
}

func TestHabit_Mutations(t *testing.T) {
	t.Run("MarkDone records the goal", func(t *testing.T) {
		h := newHabit(t, domain.HabitAttributes{Name: "Walk", MetricType: domain.MetricSteps, Goal: 5000})

		changed, err := h.MarkDone(today, today, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 5000.0, h.CompletedDates[today])
		assert.Equal(t, 1, h.CompletedDays)
		assert.Equal(t, 5000.0, h.TotalProgress)

		changed, err = h.MarkDone(today, today, now)
		require.NoError(t, err)
		assert.False(t, changed, "marking twice is idempotent")
	})

	t.Run("ToggleDate flips completion", func(t *testing.T) {
		h := newHabit(t, domain.HabitAttributes{Name: "Meditate"})

		_, err := h.ToggleDate("2024-06-10", today, now)
		require.NoError(t, err)
		assert.True(t, h.IsCompletedOn("2024-06-10"))

		_, err = h.ToggleDate("2024-06-10", today, now)
		require.NoError(t, err)
		assert.False(t, h.IsCompletedOn("2024-06-10"))
		assert.Equal(t, 0, h.CompletedDays)
	})

	t.Run("RecordProgress with non-positive value deletes the key", func(t *testing.T) {
		h := newHabit(t, domain.HabitAttributes{Name: "Run", MetricType: domain.MetricMinutes, Goal: 30})

		_, err := h.RecordProgress(today, 12, today, now)
		require.NoError(t, err)
		assert.Equal(t, 12.0, h.CompletedDates[today])

		changed, err := h.RecordProgress(today, -3, today, now)
		require.NoError(t, err)
		assert.True(t, changed)
		_, exists := h.CompletedDates[today]
		assert.False(t, exists)
	})

	t.Run("Future dates are a silent no-op", func(t *testing.T) {
		h := newHabit(t, domain.HabitAttributes{Name: "Run"})

		changed, err := h.MarkDone("2024-06-16", today, now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, h.CompletedDates)
	})

	t.Run("Invalid date is rejected", func(t *testing.T) {
		h := newHabit(t, domain.HabitAttributes{Name: "Run"})

		_, err := h.MarkDone("15/06/2024", today, now)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestHabit_DerivedFields(t *testing.T) {
	h := newHabit(t, domain.HabitAttributes{Name: "Pushups", MetricType: domain.MetricCount, Goal: 20})

	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		h.CompletedDates[domain.FormatDate(day.AddDate(0, 0, i))] = 20
	}
	h.Recompute()

	assert.Equal(t, len(h.CompletedDates), h.CompletedDays)
	assert.Equal(t, 20.0*400, h.TotalProgress)
	assert.Equal(t, 100, h.PercentComplete, "percent complete is capped at 100")

	h.CompletedDates = map[string]float64{"2024-01-01": 1, "2024-01-02": 1}
	h.Recompute()
	assert.Equal(t, 1, h.PercentComplete, "2/365 rounds to 1%")
}

func TestHabit_Normalize(t *testing.T) {
	h := &domain.Habit{
		Name:             " Legacy ",
		Goal:             0,
		Frequency:        "sometimes",
		DaysPerWeek:      0,
		NotificationTime: "7am",
		CompletedDates: map[string]float64{
			"2024-01-01": 1,
			"2024-01-02": 0,
			"yesterday":  1,
			"2024-01-03": -1,
		},
	}

	h.Normalize(now)

	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "Legacy", h.Name)
	assert.Equal(t, domain.DefaultIcon, h.Icon)
	assert.Equal(t, domain.MetricBoolean, h.MetricType)
	assert.Equal(t, 1.0, h.Goal)
	assert.Equal(t, domain.FrequencyDaily, h.Frequency)
	assert.Equal(t, 7, h.DaysPerWeek)
	assert.Empty(t, h.NotificationTime)
	assert.False(t, h.NotificationEnabled)
	assert.Equal(t, map[string]float64{"2024-01-01": 1}, h.CompletedDates)
	assert.Equal(t, 1, h.CompletedDays)
	assert.Equal(t, now, h.CreatedAt)
}

func TestHabit_Clone(t *testing.T) {
	h := newHabit(t, domain.HabitAttributes{Name: "Read"})
	h.CompletedDates["2024-06-01"] = 1

	c := h.Clone()
	c.CompletedDates["2024-06-02"] = 1

	assert.Len(t, h.CompletedDates, 1)
	assert.Len(t, c.CompletedDates, 2)
}
