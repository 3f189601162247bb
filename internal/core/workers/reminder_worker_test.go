package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Reminder
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, r domain.Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, r)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type staticSettings struct {
	s domain.Settings
}

func (s staticSettings) Get(ctx context.Context) (domain.Settings, error) {
	return s.s, nil
}

func reminderHabit(id, at string) *domain.Habit {
	return &domain.Habit{ID: id, Name: "Habit " + id, NotificationEnabled: true, NotificationTime: at}
}

func drain(w *ReminderWorker) {
	for {
		select {
		case job := <-w.jobs:
			w.apply(job)
		default:
			return
		}
	}
}

func TestReminderWorker_Dispatch(t *testing.T) {
	at := time.Date(2024, 6, 5, 7, 30, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name     string
		habits   []*domain.Habit
		settings domain.Settings
		now      time.Time
		wantSent int
	}{
		{
			name:     "Due reminder is sent",
			habits:   []*domain.Habit{reminderHabit("a", "07:30")},
			settings: domain.DefaultSettings(),
			now:      at,
			wantSent: 1,
		},
		{
			name:     "Other minute is skipped",
			habits:   []*domain.Habit{reminderHabit("a", "07:31")},
			settings: domain.DefaultSettings(),
			now:      at,
			wantSent: 0,
		},
		{
			name:     "Global switch off silences everything",
			habits:   []*domain.Habit{reminderHabit("a", "07:30")},
			settings: domain.Settings{NotificationsEnabled: false},
			now:      at,
			wantSent: 0,
		},
		{
			name:     "Several habits at the same time",
			habits:   []*domain.Habit{reminderHabit("a", "07:30"), reminderHabit("b", "07:30"), reminderHabit("c", "21:00")},
			settings: domain.DefaultSettings(),
			now:      at,
			wantSent: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			w := NewReminderWorker(notifier, staticSettings{tt.settings}, domain.FixedClock{At: tt.now}, time.Minute)

			w.ScheduleAll(tt.habits)
			drain(w)

			assert.Equal(t, tt.wantSent, w.dispatchDue(ctx, tt.now))
			assert.Equal(t, tt.wantSent, notifier.count())
		})
	}
}

func TestReminderWorker_OncePerDay(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	at := time.Date(2024, 6, 5, 7, 30, 0, 0, time.UTC)
	w := NewReminderWorker(notifier, nil, domain.FixedClock{At: at}, time.Minute)

	w.Schedule(reminderHabit("a", "07:30"))
	drain(w)

	assert.Equal(t, 1, w.dispatchDue(ctx, at))
	assert.Equal(t, 0, w.dispatchDue(ctx, at.Add(20*time.Second)), "same day, same minute")

	// rescheduling with the same time keeps the sent marker
	w.Schedule(reminderHabit("a", "07:30"))
	drain(w)
	assert.Equal(t, 0, w.dispatchDue(ctx, at))

	assert.Equal(t, 1, w.dispatchDue(ctx, at.AddDate(0, 0, 1)))
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "2024-06-06", notifier.sent[1].Date)
	assert.Equal(t, "Time for Habit a!", notifier.sent[1].Message)
}

func TestReminderWorker_Cancel(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	at := time.Date(2024, 6, 5, 7, 30, 0, 0, time.UTC)
	w := NewReminderWorker(notifier, nil, domain.FixedClock{At: at}, time.Minute)

	w.Schedule(reminderHabit("a", "07:30"))
	w.Cancel("a")
	drain(w)

	assert.Empty(t, w.schedule)
	assert.Equal(t, 0, w.dispatchDue(ctx, at))

	disabled := reminderHabit("b", "07:30")
	disabled.NotificationEnabled = false
	w.Schedule(disabled)
	drain(w)
	assert.Empty(t, w.schedule)
}

func TestReminderWorker_FailedSendIsRetried(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{err: errors.New("broker down")}
	at := time.Date(2024, 6, 5, 7, 30, 0, 0, time.UTC)
	w := NewReminderWorker(notifier, nil, domain.FixedClock{At: at}, time.Minute)

	w.Schedule(reminderHabit("a", "07:30"))
	drain(w)

	assert.Equal(t, 0, w.dispatchDue(ctx, at))

	notifier.err = nil
	assert.Equal(t, 1, w.dispatchDue(ctx, at.Add(30*time.Second)))
}

func TestReminderWorker_CatchUp(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 5, 7, 30, 0, 0, time.UTC)

	t.Run("Success: Failed send goes out after its minute has passed", func(t *testing.T) {
		notifier := &recordingNotifier{err: errors.New("broker down")}
		w := NewReminderWorker(notifier, nil, domain.FixedClock{At: at}, time.Minute)
		w.Schedule(reminderHabit("a", "07:30"))
		drain(w)

		assert.Equal(t, 0, w.dispatchDue(ctx, at))

		notifier.err = nil
		assert.Equal(t, 1, w.dispatchDue(ctx, at.Add(time.Minute)))
		assert.Equal(t, 0, w.dispatchDue(ctx, at.Add(2*time.Minute)), "sent once per day")
	})

	t.Run("Success: Tick that skips the exact minute still fires", func(t *testing.T) {
		notifier := &recordingNotifier{}
		w := NewReminderWorker(notifier, nil, domain.FixedClock{At: at.Add(-time.Hour)}, time.Minute)
		w.Schedule(reminderHabit("a", "07:30"))
		drain(w)

		assert.Equal(t, 0, w.dispatchDue(ctx, at.Add(-time.Minute)))
		assert.Equal(t, 1, w.dispatchDue(ctx, at.Add(90*time.Second)))
	})

	t.Run("Success: Reminder scheduled after its time waits for tomorrow", func(t *testing.T) {
		notifier := &recordingNotifier{}
		later := at.Add(2 * time.Hour)
		w := NewReminderWorker(notifier, nil, domain.FixedClock{At: later}, time.Minute)
		w.Schedule(reminderHabit("a", "07:30"))
		drain(w)

		assert.Equal(t, 0, w.dispatchDue(ctx, later))
		assert.Equal(t, 1, w.dispatchDue(ctx, at.AddDate(0, 0, 1)))
	})
}

func TestReminderWorker_QueueFull(t *testing.T) {
	w := NewReminderWorker(&recordingNotifier{}, nil, domain.SystemClock{}, time.Minute)

	for i := 0; i < cap(w.jobs)+5; i++ {
		w.Cancel("a")
	}
	assert.Len(t, w.jobs, cap(w.jobs))
}

func TestReminderWorker_Start(t *testing.T) {
	notifier := &recordingNotifier{}
	at := time.Date(2024, 6, 5, 7, 30, 0, 0, time.UTC)
	w := NewReminderWorker(notifier, nil, domain.FixedClock{At: at}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	w.Schedule(reminderHabit("a", "07:30"))

	assert.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 10*time.Millisecond)
}
