package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

var (
	now   = time.Date(2024, 6, 5, 10, 30, 0, 0, time.UTC)
	clock = domain.FixedClock{At: now}
)

const today = "2024-06-05"

type MockRepo struct {
	mu            sync.Mutex
	store         map[string]*domain.Habit
	order         []string
	simulateError error
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		store: make(map[string]*domain.Habit),
	}
}

func (m *MockRepo) Create(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, exists := m.store[habit.ID]; exists {
		return errors.New("duplicate habit id")
	}
	m.store[habit.ID] = habit.Clone()
	m.order = append(m.order, habit.ID)
	return nil
}

func (m *MockRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return h.Clone(), nil
}

func (m *MockRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	list := make([]*domain.Habit, 0, len(m.order))
	for _, id := range m.order {
		list = append(list, m.store[id].Clone())
	}
	return list, nil
}

func (m *MockRepo) Update(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	m.store[habit.ID] = habit.Clone()
	return nil
}

func (m *MockRepo) Mutate(ctx context.Context, id string, fn func(h *domain.Habit) (bool, error)) (*domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.simulateError != nil {
		return nil, m.simulateError
	}
	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	working := h.Clone()
	changed, err := fn(working)
	if err != nil {
		return nil, err
	}
	if changed {
		m.store[id] = working.Clone()
	}
	return working, nil
}

func (m *MockRepo) Delete(ctx context.Context, id string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(m.store, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockRepo) Upsert(ctx context.Context, habits []*domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	for _, h := range habits {
		if _, ok := m.store[h.ID]; !ok {
			m.order = append(m.order, h.ID)
		}
		m.store[h.ID] = h.Clone()
	}
	return nil
}

func (m *MockRepo) add(h *domain.Habit) {
	m.store[h.ID] = h
	m.order = append(m.order, h.ID)
}

type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) Save(ctx context.Context, note *domain.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepo) Get(ctx context.Context, habitID, date string) (*domain.Note, error) {
	args := m.Called(ctx, habitID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepo) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Note, error) {
	args := m.Called(ctx, habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Note), args.Error(1)
}

func (m *MockNoteRepo) List(ctx context.Context) ([]*domain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Note), args.Error(1)
}

func (m *MockNoteRepo) Delete(ctx context.Context, habitID, date string) error {
	return m.Called(ctx, habitID, date).Error(0)
}

func (m *MockNoteRepo) DeleteByHabitID(ctx context.Context, habitID string) (int, error) {
	args := m.Called(ctx, habitID)
	return args.Int(0), args.Error(1)
}

type MockSettingsRepo struct {
	current       domain.Settings
	saves         int
	simulateError error
}

func NewMockSettingsRepo() *MockSettingsRepo {
	return &MockSettingsRepo{current: domain.DefaultSettings()}
}

func (m *MockSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	if m.simulateError != nil {
		return domain.Settings{}, m.simulateError
	}
	return m.current, nil
}

func (m *MockSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.current = s
	m.saves++
	return nil
}

func (m *MockSettingsRepo) Reset(ctx context.Context) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.current = domain.DefaultSettings()
	return nil
}

type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) Schedule(habit *domain.Habit) {
	m.Called(habit.ID, habit.NotificationTime)
}

func (m *MockScheduler) Cancel(habitID string) {
	m.Called(habitID)
}

func newHabit(name string, dates ...string) *domain.Habit {
	h, err := domain.NewHabit(domain.HabitAttributes{Name: name}, now)
	if err != nil {
		panic(err)
	}
	for _, d := range dates {
		h.CompletedDates[d] = h.Goal
	}
	h.Recompute()
	return h
}
