package services

import (
	"context"
	"fmt"
	"log"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// ReminderScheduler keeps the reminder schedule in sync with habits.
type ReminderScheduler interface {
	Schedule(habit *domain.Habit)
	Cancel(habitID string)
}

type HabitService struct {
	repo      domain.HabitRepository
	notes     domain.NoteRepository
	scheduler ReminderScheduler
	clock     domain.Clock
}

func NewHabitService(repo domain.HabitRepository, notes domain.NoteRepository, scheduler ReminderScheduler, clock domain.Clock) *HabitService {
	return &HabitService{
		repo:      repo,
		notes:     notes,
		scheduler: scheduler,
		clock:     clock,
	}
}

type CreateHabitInput struct {
	Name                string
	Icon                string
	Category            string
	MetricType          string
	Goal                float64
	Unit                string
	Frequency           string
	DaysPerWeek         int
	NotificationEnabled bool
	NotificationTime    string
}

// UpdateHabitInput follows merge semantics: zero values keep the stored field.
type UpdateHabitInput struct {
	ID                  string
	Name                string
	Icon                string
	Category            string
	MetricType          string
	Goal                float64
	Unit                string
	Frequency           string
	DaysPerWeek         int
	NotificationEnabled *bool
	NotificationTime    string
}

func mergeString(newVal, oldVal string) string {
	if newVal == "" {
		return oldVal
	}
	return newVal
}

// ReminderID is the notification id attached to a habit with reminders on.
func ReminderID(habitID string) string {
	return "reminder-" + habitID
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(domain.HabitAttributes{
		Name:                input.Name,
		Icon:                input.Icon,
		Category:            input.Category,
		MetricType:          domain.MetricType(input.MetricType),
		Goal:                input.Goal,
		Unit:                input.Unit,
		Frequency:           domain.Frequency(input.Frequency),
		DaysPerWeek:         input.DaysPerWeek,
		NotificationEnabled: input.NotificationEnabled,
		NotificationTime:    input.NotificationTime,
	}, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if habit.NotificationEnabled {
		habit.NotificationID = ReminderID(habit.ID)
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.syncReminder(habit)
	return habit, nil
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.List(ctx)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.Mutate(ctx, input.ID, func(habit *domain.Habit) (bool, error) {
		attrs := habit.Attributes()
		attrs.Name = mergeString(input.Name, attrs.Name)
		attrs.Icon = mergeString(input.Icon, attrs.Icon)
		attrs.Category = mergeString(input.Category, attrs.Category)
		attrs.MetricType = domain.MetricType(mergeString(input.MetricType, string(attrs.MetricType)))
		attrs.Unit = mergeString(input.Unit, attrs.Unit)
		attrs.Frequency = domain.Frequency(mergeString(input.Frequency, string(attrs.Frequency)))
		attrs.NotificationTime = mergeString(input.NotificationTime, attrs.NotificationTime)

		if input.Goal > 0 {
			attrs.Goal = input.Goal
		}
		if input.DaysPerWeek > 0 {
			attrs.DaysPerWeek = input.DaysPerWeek
		}
		if input.NotificationEnabled != nil {
			attrs.NotificationEnabled = *input.NotificationEnabled
		}

		if err := habit.Update(attrs, s.clock.Now()); err != nil {
			return false, err
		}
		if habit.NotificationEnabled {
			habit.NotificationID = ReminderID(habit.ID)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.syncReminder(habit)
	return habit, nil
}

// Delete removes the habit, cancels its reminder and drops its notes.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.scheduler != nil {
		s.scheduler.Cancel(id)
	}

	if s.notes != nil {
		removed, err := s.notes.DeleteByHabitID(ctx, id)
		if err != nil {
			return fmt.Errorf("habit service: habit deleted but notes were kept: %w", err)
		}
		if removed > 0 {
			log.Printf("[HABITS] Deleted %d notes of habit %s", removed, id)
		}
	}

	return nil
}

// MarkDone records the full goal on date; an empty date means today.
func (s *HabitService) MarkDone(ctx context.Context, id, date string) (*domain.Habit, error) {
	return s.mutate(ctx, id, date, func(h *domain.Habit, date, today string) (bool, error) {
		return h.MarkDone(date, today, s.clock.Now())
	})
}

func (s *HabitService) ToggleDate(ctx context.Context, id, date string) (*domain.Habit, error) {
	return s.mutate(ctx, id, date, func(h *domain.Habit, date, today string) (bool, error) {
		return h.ToggleDate(date, today, s.clock.Now())
	})
}

func (s *HabitService) RecordProgress(ctx context.Context, id, date string, value float64) (*domain.Habit, error) {
	return s.mutate(ctx, id, date, func(h *domain.Habit, date, today string) (bool, error) {
		return h.RecordProgress(date, value, today, s.clock.Now())
	})
}

func (s *HabitService) mutate(ctx context.Context, id, date string, fn func(h *domain.Habit, date, today string) (bool, error)) (*domain.Habit, error) {
	today := domain.Today(s.clock)
	if date == "" {
		date = today
	}

	return s.repo.Mutate(ctx, id, func(h *domain.Habit) (bool, error) {
		return fn(h, date, today)
	})
}

func (s *HabitService) syncReminder(habit *domain.Habit) {
	if s.scheduler == nil {
		return
	}
	if habit.NotificationEnabled {
		s.scheduler.Schedule(habit)
	} else {
		s.scheduler.Cancel(habit.ID)
	}
}
