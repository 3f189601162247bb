package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var _ domain.HabitRepository = (*HabitRepository)(nil)

// HabitRepository stores the whole habit collection as one JSON array under
// domain.HabitsKey. Every write rewrites the blob.
type HabitRepository struct {
	store domain.KeyValueStore
	clock domain.Clock

	mu sync.Mutex
}

func NewHabitRepository(store domain.KeyValueStore, clock domain.Clock) *HabitRepository {
	return &HabitRepository{
		store: store,
		clock: clock,
	}
}

// storedHabit accepts completed_dates both as the current date→value map and
// as the legacy array of dates.
type storedHabit struct {
	domain.Habit
	CompletedDates json.RawMessage `json:"completed_dates"`
}

func (r *HabitRepository) load(ctx context.Context) ([]*domain.Habit, error) {
	raw, err := r.store.Get(ctx, domain.HabitsKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return []*domain.Habit{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load habits: %w", err)
	}

	var stored []storedHabit
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("repository: decode habits: %w", err)
	}

	now := r.clock.Now()
	habits := make([]*domain.Habit, 0, len(stored))
	for i := range stored {
		h := stored[i].Habit
		dates, err := decodeCompletedDates(stored[i].CompletedDates, h.Goal)
		if err != nil {
			return nil, fmt.Errorf("repository: decode habit %s: %w", h.ID, err)
		}
		h.CompletedDates = dates
		h.Normalize(now)
		habits = append(habits, &h)
	}
	return habits, nil
}

func decodeCompletedDates(raw json.RawMessage, goal float64) (map[string]float64, error) {
	dates := make(map[string]float64)
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return dates, nil
	}
	if goal <= 0 {
		goal = 1
	}

	if raw[0] == '[' {
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		for _, d := range list {
			dates[d] = goal
		}
		return dates, nil
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	for d, v := range values {
		var n float64
		if err := json.Unmarshal(v, &n); err == nil {
			dates[d] = n
			continue
		}
		var done bool
		if err := json.Unmarshal(v, &done); err == nil && done {
			dates[d] = goal
		}
	}
	return dates, nil
}

func (r *HabitRepository) save(ctx context.Context, habits []*domain.Habit) error {
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("repository: encode habits: %w", err)
	}
	if err := r.store.Set(ctx, domain.HabitsKey, data); err != nil {
		return fmt.Errorf("repository: save habits: %w", err)
	}
	return nil
}

func indexOf(habits []*domain.Habit, id string) int {
	for i, h := range habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (r *HabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(habits, habit.ID) >= 0 {
		return domain.ErrHabitExists
	}

	return r.save(ctx, append(habits, habit.Clone()))
}

func (r *HabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(habits, id)
	if i < 0 {
		return nil, domain.ErrHabitNotFound
	}
	return habits[i], nil
}

func (r *HabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *HabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(habits, habit.ID)
	if i < 0 {
		return domain.ErrHabitNotFound
	}

	habits[i] = habit.Clone()
	return r.save(ctx, habits)
}

func (r *HabitRepository) Mutate(ctx context.Context, id string, fn func(h *domain.Habit) (bool, error)) (*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(habits, id)
	if i < 0 {
		return nil, domain.ErrHabitNotFound
	}

	habit := habits[i]
	changed, err := fn(habit)
	if err != nil {
		return nil, err
	}
	if !changed {
		return habit.Clone(), nil
	}

	habits[i] = habit.Clone()
	if err := r.save(ctx, habits); err != nil {
		return nil, err
	}
	return habit, nil
}

func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(habits, id)
	if i < 0 {
		return domain.ErrHabitNotFound
	}

	return r.save(ctx, append(habits[:i], habits[i+1:]...))
}

// Upsert replaces habits with a matching id and appends the others.
func (r *HabitRepository) Upsert(ctx context.Context, incoming []*domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, h := range incoming {
		if i := indexOf(habits, h.ID); i >= 0 {
			habits[i] = h.Clone()
		} else {
			habits = append(habits, h.Clone())
		}
	}
	return r.save(ctx, habits)
}
