package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTheme     = errors.New("invalid theme (must be light, dark or system)")
	ErrInvalidWeekStart = errors.New("invalid week start day (must be 0-6)")
	ErrUsernameTooLong  = errors.New("username is too long (max 50 chars)")
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

const (
	DefaultUsername     = "Friend"
	DefaultReminderTime = "09:00"
	MaxUsernameLen      = 50
)

type Settings struct {
	Username             string       `json:"username"`
	Avatar               string       `json:"avatar,omitempty"`
	NotificationsEnabled bool         `json:"notifications_enabled"`
	DefaultReminderTime  string       `json:"default_reminder_time"`
	WeekStartDay         time.Weekday `json:"week_start_day"`
	Theme                Theme        `json:"theme"`
	OnboardingComplete   bool         `json:"onboarding_complete"`
	PasscodeHash         string       `json:"passcode_hash,omitempty"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

func DefaultSettings() Settings {
	return Settings{
		Username:             DefaultUsername,
		NotificationsEnabled: true,
		DefaultReminderTime:  DefaultReminderTime,
		WeekStartDay:         time.Sunday,
		Theme:                ThemeSystem,
	}
}

// SettingsPatch carries a partial update; nil fields are left untouched.
type SettingsPatch struct {
	Username             *string
	Avatar               *string
	NotificationsEnabled *bool
	DefaultReminderTime  *string
	WeekStartDay         *int
	Theme                *string
	OnboardingComplete   *bool
}

// Merge applies the patch on a copy of s, validating every field it touches.
func (s Settings) Merge(p SettingsPatch, now time.Time) (Settings, error) {
	out := s

	if p.Username != nil {
		name := strings.TrimSpace(*p.Username)
		if len(name) > MaxUsernameLen {
			return s, ErrUsernameTooLong
		}
		if name == "" {
			name = DefaultUsername
		}
		out.Username = name
	}
	if p.Avatar != nil {
		out.Avatar = strings.TrimSpace(*p.Avatar)
	}
	if p.NotificationsEnabled != nil {
		out.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.DefaultReminderTime != nil {
		if !reminderRegex.MatchString(*p.DefaultReminderTime) {
			return s, ErrInvalidReminder
		}
		out.DefaultReminderTime = *p.DefaultReminderTime
	}
	if p.WeekStartDay != nil {
		if *p.WeekStartDay < 0 || *p.WeekStartDay > 6 {
			return s, ErrInvalidWeekStart
		}
		out.WeekStartDay = time.Weekday(*p.WeekStartDay)
	}
	if p.Theme != nil {
		theme := Theme(*p.Theme)
		if !theme.IsValid() {
			return s, ErrInvalidTheme
		}
		out.Theme = theme
	}
	if p.OnboardingComplete != nil {
		out.OnboardingComplete = *p.OnboardingComplete
	}

	out.UpdatedAt = now.UTC()
	return out, nil
}

// FillDefaults replaces zero or invalid stored values with defaults.
func (s Settings) FillDefaults() Settings {
	def := DefaultSettings()
	if strings.TrimSpace(s.Username) == "" {
		s.Username = def.Username
	}
	if !reminderRegex.MatchString(s.DefaultReminderTime) {
		s.DefaultReminderTime = def.DefaultReminderTime
	}
	if s.WeekStartDay < time.Sunday || s.WeekStartDay > time.Saturday {
		s.WeekStartDay = def.WeekStartDay
	}
	if !s.Theme.IsValid() {
		s.Theme = def.Theme
	}
	return s
}

// HasPasscode reports whether the API is locked behind a passcode.
func (s Settings) HasPasscode() bool {
	return s.PasscodeHash != ""
}
