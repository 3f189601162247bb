package domain

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid period (must be week, month or year)")
	ErrInvalidRange  = errors.New("invalid date range (start must not be after end, max 366 days)")
)

// MaxRangeDays bounds explicit report ranges.
const MaxRangeDays = 366

// Period selects the window an aggregate covers.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// DateRange is an inclusive range of YYYY-MM-DD dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

type StreakSummary struct {
	HabitID string `json:"habit_id,omitempty"`
	Current int    `json:"current"`
	Best    int    `json:"best"`
}

type Comparison struct {
	Period   Period    `json:"period"`
	Current  int       `json:"current"`
	Previous int       `json:"previous"`
	Trend    Trend     `json:"trend"`
	Range    DateRange `json:"range"`
	Prior    DateRange `json:"previous_range"`
}

type DayActivity struct {
	Day     string `json:"day"`
	Date    string `json:"date"`
	Value   int    `json:"value"`
	IsToday bool   `json:"is_today"`
}

type DayStats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type CalendarDay struct {
	Date      string `json:"date"`
	Intensity int    `json:"intensity"`
	DayStats
}

type MonthCalendar struct {
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Offset int           `json:"offset"`
	Days   []CalendarDay `json:"days"`
}

type MoodPoint struct {
	Label   string `json:"label"`
	Date    string `json:"date"`
	Average int    `json:"average"`
	Count   int    `json:"count"`
}

type RangeReport struct {
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	TotalHabits int         `json:"total_habits"`
	OverallRate float64     `json:"overall_completion_rate"`
	HabitStats  []HabitStat `json:"habits"`
}

type HabitStat struct {
	HabitID        string    `json:"habit_id"`
	HabitName      string    `json:"habit_name"`
	Icon           string    `json:"icon"`
	Goal           float64   `json:"goal"`
	Unit           string    `json:"unit"`
	TotalValue     float64   `json:"total_value"`
	CompletionRate float64   `json:"completion_rate"`
	DaysCompleted  int       `json:"days_completed"`
	DailyProgress  []float64 `json:"daily_progress"`
}

type Overview struct {
	Today          string     `json:"today"`
	TotalHabits    int        `json:"total_habits"`
	CompletedToday int        `json:"completed_today"`
	Week           Comparison `json:"week"`
	PerfectStreak  int        `json:"perfect_streak"`
	BestStreak     int        `json:"best_current_streak"`
	BestStreakID   string     `json:"best_current_streak_habit_id,omitempty"`
}
