package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestSettings_Merge(t *testing.T) {
	base := domain.DefaultSettings()

	t.Run("Success: Applies only provided fields", func(t *testing.T) {
		out, err := base.Merge(domain.SettingsPatch{
			Username:     strPtr("  Giacomo "),
			WeekStartDay: intPtr(1),
			Theme:        strPtr("dark"),
		}, now)

		require.NoError(t, err)
		assert.Equal(t, "Giacomo", out.Username)
		assert.Equal(t, time.Monday, out.WeekStartDay)
		assert.Equal(t, domain.ThemeDark, out.Theme)
		assert.Equal(t, base.DefaultReminderTime, out.DefaultReminderTime)
		assert.True(t, out.NotificationsEnabled)
		assert.Equal(t, now, out.UpdatedAt)
	})

	t.Run("Success: Blank username falls back to default", func(t *testing.T) {
		out, err := base.Merge(domain.SettingsPatch{Username: strPtr("  ")}, now)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultUsername, out.Username)
	})

	t.Run("Success: Completes onboarding", func(t *testing.T) {
		out, err := base.Merge(domain.SettingsPatch{OnboardingComplete: boolPtr(true)}, now)
		require.NoError(t, err)
		assert.True(t, out.OnboardingComplete)
	})

	tests := []struct {
		name    string
		patch   domain.SettingsPatch
		wantErr error
	}{
		{"Error: Theme", domain.SettingsPatch{Theme: strPtr("neon")}, domain.ErrInvalidTheme},
		{"Error: Week start", domain.SettingsPatch{WeekStartDay: intPtr(7)}, domain.ErrInvalidWeekStart},
		{"Error: Reminder", domain.SettingsPatch{DefaultReminderTime: strPtr("9:00")}, domain.ErrInvalidReminder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := base.Merge(tt.patch, now)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, base, out, "failed merge returns the original settings")
		})
	}
}

func TestSettings_FillDefaults(t *testing.T) {
	s := domain.Settings{Username: "", DefaultReminderTime: "late", WeekStartDay: 9, Theme: "pink"}.FillDefaults()

	def := domain.DefaultSettings()
	assert.Equal(t, def.Username, s.Username)
	assert.Equal(t, def.DefaultReminderTime, s.DefaultReminderTime)
	assert.Equal(t, def.WeekStartDay, s.WeekStartDay)
	assert.Equal(t, def.Theme, s.Theme)
}
