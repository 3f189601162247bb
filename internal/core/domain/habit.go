package domain

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty      = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong    = errors.New("habit name is too long (max 100 chars)")
	ErrInvalidMetricType   = errors.New("invalid metric type (must be steps, minutes, hours, count or boolean)")
	ErrInvalidFrequency    = errors.New("invalid frequency (must be daily, weekly or monthly)")
	ErrInvalidGoal         = errors.New("goal must be a positive number")
	ErrInvalidDaysPerWeek  = errors.New("days per week must be between 1 and 7")
	ErrInvalidReminder     = errors.New("invalid reminder format (must be HH:MM 24h)")
	ErrReminderWithoutTime = errors.New("notification enabled without a notification time")
)

var reminderRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

type MetricType string

const (
	MetricSteps   MetricType = "steps"
	MetricMinutes MetricType = "minutes"
	MetricHours   MetricType = "hours"
	MetricCount   MetricType = "count"
	MetricBoolean MetricType = "boolean"
)

func (m MetricType) IsValid() bool {
	switch m {
	case MetricSteps, MetricMinutes, MetricHours, MetricCount, MetricBoolean:
		return true
	default:
		return false
	}
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

const (
	DefaultIcon     = "star"
	DefaultCategory = "other"
	DefaultUnit     = "times"
	MaxNameLen      = 100
	DaysPerYear     = 365
)

type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Category    string     `json:"category"`
	MetricType  MetricType `json:"metric_type"`
	Goal        float64    `json:"goal"`
	Unit        string     `json:"unit"`
	Frequency   Frequency  `json:"frequency"`
	DaysPerWeek int        `json:"days_per_week"`

	CompletedDays   int     `json:"completed_days"`
	PercentComplete int     `json:"percent_complete"`
	TotalProgress   float64 `json:"total_progress"`

	// CompletedDates maps a YYYY-MM-DD date to the progress recorded that day.
	// A missing key means "not done"; stored values are always positive.
	CompletedDates map[string]float64 `json:"completed_dates"`

	NotificationEnabled bool   `json:"notification_enabled"`
	NotificationTime    string `json:"notification_time,omitempty"`
	NotificationID      string `json:"notification_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitAttributes is the user-editable part of a habit.
type HabitAttributes struct {
	Name                string
	Icon                string
	Category            string
	MetricType          MetricType
	Goal                float64
	Unit                string
	Frequency           Frequency
	DaysPerWeek         int
	NotificationEnabled bool
	NotificationTime    string
}

func validateAndNormalize(attrs HabitAttributes) (HabitAttributes, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)
	if attrs.Name == "" {
		return attrs, ErrHabitNameEmpty
	}
	if len(attrs.Name) > MaxNameLen {
		return attrs, ErrHabitNameTooLong
	}

	if attrs.MetricType == "" {
		attrs.MetricType = MetricBoolean
	}
	if !attrs.MetricType.IsValid() {
		return attrs, ErrInvalidMetricType
	}

	if attrs.Frequency == "" {
		attrs.Frequency = FrequencyDaily
	}
	if !attrs.Frequency.IsValid() {
		return attrs, ErrInvalidFrequency
	}

	if attrs.MetricType == MetricBoolean {
		attrs.Goal = 1
	} else if attrs.Goal <= 0 || math.IsNaN(attrs.Goal) || math.IsInf(attrs.Goal, 0) {
		return attrs, ErrInvalidGoal
	}

	switch attrs.Frequency {
	case FrequencyDaily:
		attrs.DaysPerWeek = 7
	default:
		if attrs.DaysPerWeek == 0 {
			attrs.DaysPerWeek = 1
		}
		if attrs.DaysPerWeek < 1 || attrs.DaysPerWeek > 7 {
			return attrs, ErrInvalidDaysPerWeek
		}
	}

	if attrs.NotificationTime != "" && !reminderRegex.MatchString(attrs.NotificationTime) {
		return attrs, ErrInvalidReminder
	}
	if attrs.NotificationEnabled && attrs.NotificationTime == "" {
		return attrs, ErrReminderWithoutTime
	}

	attrs.Icon = strings.TrimSpace(attrs.Icon)
	if attrs.Icon == "" {
		attrs.Icon = DefaultIcon
	}
	attrs.Category = strings.TrimSpace(attrs.Category)
	if attrs.Category == "" {
		attrs.Category = DefaultCategory
	}
	attrs.Unit = strings.TrimSpace(attrs.Unit)
	if attrs.Unit == "" {
		attrs.Unit = defaultUnit(attrs.MetricType)
	}

	return attrs, nil
}

func defaultUnit(m MetricType) string {
	switch m {
	case MetricSteps:
		return "steps"
	case MetricMinutes:
		return "min"
	case MetricHours:
		return "h"
	default:
		return DefaultUnit
	}
}

func NewHabit(attrs HabitAttributes, now time.Time) (*Habit, error) {
	clean, err := validateAndNormalize(attrs)
	if err != nil {
		return nil, err
	}

	h := &Habit{
		ID:             uuid.New().String(),
		CompletedDates: make(map[string]float64),
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}
	h.apply(clean)
	h.Recompute()

	return h, nil
}

func (h *Habit) Update(attrs HabitAttributes, now time.Time) error {
	clean, err := validateAndNormalize(attrs)
	if err != nil {
		return err
	}

	h.apply(clean)
	h.Recompute()
	h.UpdatedAt = now.UTC()
	return nil
}

// Attributes returns the editable fields, the starting point for partial updates.
func (h *Habit) Attributes() HabitAttributes {
	return HabitAttributes{
		Name:                h.Name,
		Icon:                h.Icon,
		Category:            h.Category,
		MetricType:          h.MetricType,
		Goal:                h.Goal,
		Unit:                h.Unit,
		Frequency:           h.Frequency,
		DaysPerWeek:         h.DaysPerWeek,
		NotificationEnabled: h.NotificationEnabled,
		NotificationTime:    h.NotificationTime,
	}
}

func (h *Habit) apply(a HabitAttributes) {
	h.Name = a.Name
	h.Icon = a.Icon
	h.Category = a.Category
	h.MetricType = a.MetricType
	h.Goal = a.Goal
	h.Unit = a.Unit
	h.Frequency = a.Frequency
	h.DaysPerWeek = a.DaysPerWeek
	h.NotificationEnabled = a.NotificationEnabled
	h.NotificationTime = a.NotificationTime
	if !a.NotificationEnabled {
		h.NotificationID = ""
	}
}

// Recompute refreshes the fields derived from the completion map.
func (h *Habit) Recompute() {
	if h.CompletedDates == nil {
		h.CompletedDates = make(map[string]float64)
	}
	h.CompletedDays = len(h.CompletedDates)
	h.TotalProgress = h.Goal * float64(h.CompletedDays)
	pct := int(math.Round(float64(h.CompletedDays) / DaysPerYear * 100))
	h.PercentComplete = min(100, pct)
}

// IsCompletedOn reports whether a positive value is recorded for date.
func (h *Habit) IsCompletedOn(date string) bool {
	return h.CompletedDates[date] > 0
}

// MarkDone records the full goal for date. Future dates are ignored.
func (h *Habit) MarkDone(date, today string, now time.Time) (bool, error) {
	return h.RecordProgress(date, h.Goal, today, now)
}

// ToggleDate flips the completion state of date. Future dates are ignored.
func (h *Habit) ToggleDate(date, today string, now time.Time) (bool, error) {
	if h.IsCompletedOn(date) {
		return h.RecordProgress(date, 0, today, now)
	}
	return h.RecordProgress(date, h.Goal, today, now)
}

// RecordProgress stores value for date; a non-positive value clears the date.
// Dates after today are a silent no-op and report false.
func (h *Habit) RecordProgress(date string, value float64, today string, now time.Time) (bool, error) {
	if !IsValidDate(date) {
		return false, ErrInvalidDate
	}
	if date > today {
		return false, nil
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false, ErrInvalidGoal
	}

	if h.CompletedDates == nil {
		h.CompletedDates = make(map[string]float64)
	}

	old, existed := h.CompletedDates[date]
	if value <= 0 {
		if !existed {
			return false, nil
		}
		delete(h.CompletedDates, date)
	} else {
		if existed && old == value {
			return false, nil
		}
		h.CompletedDates[date] = value
	}

	h.Recompute()
	h.UpdatedAt = now.UTC()
	return true, nil
}

// Normalize repairs records written by older versions: missing fields get
// defaults, invalid completion entries are dropped and derived fields recomputed.
func (h *Habit) Normalize(now time.Time) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.Name = strings.TrimSpace(h.Name)
	if h.Icon == "" {
		h.Icon = DefaultIcon
	}
	if h.Category == "" {
		h.Category = DefaultCategory
	}
	if !h.MetricType.IsValid() {
		h.MetricType = MetricBoolean
	}
	if h.MetricType == MetricBoolean || h.Goal <= 0 || math.IsNaN(h.Goal) {
		h.Goal = 1
	}
	if h.Unit == "" {
		h.Unit = defaultUnit(h.MetricType)
	}
	if !h.Frequency.IsValid() {
		h.Frequency = FrequencyDaily
	}
	if h.Frequency == FrequencyDaily {
		h.DaysPerWeek = 7
	} else if h.DaysPerWeek < 1 || h.DaysPerWeek > 7 {
		h.DaysPerWeek = 1
	}
	if h.NotificationTime != "" && !reminderRegex.MatchString(h.NotificationTime) {
		h.NotificationTime = ""
	}
	if h.NotificationTime == "" {
		h.NotificationEnabled = false
	}

	for date, v := range h.CompletedDates {
		if v <= 0 || math.IsNaN(v) || !IsValidDate(date) {
			delete(h.CompletedDates, date)
		}
	}

	if h.CreatedAt.IsZero() {
		h.CreatedAt = now.UTC()
	}
	if h.UpdatedAt.IsZero() {
		h.UpdatedAt = h.CreatedAt
	}

	h.Recompute()
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (h *Habit) Clone() *Habit {
	c := *h
	c.CompletedDates = make(map[string]float64, len(h.CompletedDates))
	for k, v := range h.CompletedDates {
		c.CompletedDates[k] = v
	}
	return &c
}
