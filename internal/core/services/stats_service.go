package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// StatsService snapshots the collections and hands them to the analytics core.
type StatsService struct {
	habitRepo    domain.HabitRepository
	noteRepo     domain.NoteRepository
	settingsRepo domain.SettingsRepository
	clock        domain.Clock
}

func NewStatsService(habitRepo domain.HabitRepository, noteRepo domain.NoteRepository, settingsRepo domain.SettingsRepository, clock domain.Clock) *StatsService {
	return &StatsService{
		habitRepo:    habitRepo,
		noteRepo:     noteRepo,
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// habits loads every habit and checks that habitID, when given, exists.
func (s *StatsService) habits(ctx context.Context, habitID string) ([]*domain.Habit, error) {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if habitID == "" {
		return habits, nil
	}
	for _, h := range habits {
		if h.ID == habitID {
			return habits, nil
		}
	}
	return nil, domain.ErrHabitNotFound
}

func parsePeriod(p string) (domain.Period, error) {
	if p == "" {
		return domain.PeriodWeek, nil
	}
	period := domain.Period(p)
	if !period.IsValid() {
		return "", domain.ErrInvalidPeriod
	}
	return period, nil
}

func (s *StatsService) Today() string {
	return domain.Today(s.clock)
}

func (s *StatsService) Streaks(ctx context.Context, habitID string) (domain.StreakSummary, error) {
	habits, err := s.habits(ctx, habitID)
	if err != nil {
		return domain.StreakSummary{}, err
	}
	return analytics.Streaks(habits, habitID, s.Today()), nil
}

// CompletionRate uses custom instead of the period range when it is not nil.
func (s *StatsService) CompletionRate(ctx context.Context, period, habitID string, custom *domain.DateRange) (int, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return 0, err
	}
	if custom != nil {
		if analytics.RangeDays(custom.Start, custom.End) < 0 {
			return 0, domain.ErrInvalidRange
		}
	}

	habits, err := s.habits(ctx, habitID)
	if err != nil {
		return 0, err
	}
	return analytics.CompletionRate(habits, p, habitID, custom, s.Today()), nil
}

func (s *StatsService) Compare(ctx context.Context, period, habitID string) (domain.Comparison, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return domain.Comparison{}, err
	}

	habits, err := s.habits(ctx, habitID)
	if err != nil {
		return domain.Comparison{}, err
	}
	return analytics.Compare(habits, p, habitID, s.Today()), nil
}

func (s *StatsService) WeeklyActivity(ctx context.Context, habitID string) ([]domain.DayActivity, error) {
	habits, err := s.habits(ctx, habitID)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyActivity(habits, habitID, s.Today()), nil
}

// DayStats reports completions on date; an empty date means today.
func (s *StatsService) DayStats(ctx context.Context, date string) (domain.DayStats, error) {
	if date == "" {
		date = s.Today()
	}
	if !domain.IsValidDate(date) {
		return domain.DayStats{}, domain.ErrInvalidDate
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return domain.DayStats{}, err
	}
	return analytics.DayStats(habits, date), nil
}

// MonthCalendar builds the grid for year/month using the configured week
// start. Zero values select the current month.
func (s *StatsService) MonthCalendar(ctx context.Context, year, month int) (domain.MonthCalendar, error) {
	now := s.clock.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return domain.MonthCalendar{}, domain.ErrInvalidDate
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return domain.MonthCalendar{}, err
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return domain.MonthCalendar{}, err
	}
	return analytics.MonthCalendar(habits, year, time.Month(month), settings.WeekStartDay), nil
}

func (s *StatsService) YearHeatmap(ctx context.Context, year int) ([]domain.CalendarDay, error) {
	if year == 0 {
		year = s.clock.Now().Year()
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.YearHeatmap(habits, year, s.Today()), nil
}

func (s *StatsService) MoodTrend(ctx context.Context, period, habitID string) ([]domain.MoodPoint, error) {
	p, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}
	if _, err := s.habits(ctx, habitID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MoodTrend(notes, p, habitID, s.Today()), nil
}

// RangeReport breaks down an explicit range of at most MaxRangeDays days.
func (s *StatsService) RangeReport(ctx context.Context, from, to string) (*domain.RangeReport, error) {
	days := analytics.RangeDays(from, to)
	if days < 0 || days > domain.MaxRangeDays {
		return nil, domain.ErrInvalidRange
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.RangeReport(habits, from, to)
	return &report, nil
}

// Overview is the dashboard summary.
func (s *StatsService) Overview(ctx context.Context) (*domain.Overview, error) {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	day := analytics.DayStats(habits, today)
	overview := &domain.Overview{
		Today:          today,
		TotalHabits:    len(habits),
		CompletedToday: day.Completed,
		Week:           analytics.Compare(habits, domain.PeriodWeek, "", today),
		PerfectStreak:  analytics.Streaks(habits, "", today).Current,
	}

	for _, h := range habits {
		streak := analytics.CurrentStreak(analytics.DatesOf(h), today)
		if streak > overview.BestStreak {
			overview.BestStreak = streak
			overview.BestStreakID = h.ID
		}
	}

	return overview, nil
}
