package workers

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

type Notifier interface {
	Notify(ctx context.Context, r domain.Reminder) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

type reminderJob struct {
	habitID  string
	reminder *domain.Reminder
}

type scheduled struct {
	reminder domain.Reminder
	lastSent string
}

// ReminderWorker fires habit reminders at their HH:MM time, at most once a
// day each. The schedule is only touched by the worker goroutine; Schedule
// and Cancel hand changes over through the job queue.
type ReminderWorker struct {
	notifier Notifier
	settings SettingsRepository
	clock    domain.Clock
	interval time.Duration
	jobs     chan reminderJob
	schedule map[string]*scheduled
}

func NewReminderWorker(notifier Notifier, settings SettingsRepository, clock domain.Clock, interval time.Duration) *ReminderWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ReminderWorker{
		notifier: notifier,
		settings: settings,
		clock:    clock,
		interval: interval,
		jobs:     make(chan reminderJob, 100),
		schedule: make(map[string]*scheduled),
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go func() {
		log.Println("[WORKER] Reminder Worker started in background...")
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case job := <-w.jobs:
				w.apply(job)
			case <-ticker.C:
				w.dispatchDue(ctx, w.clock.Now())
			case <-ctx.Done():
				log.Println("[WORKER] Reminder Worker shutting down...")
				return
			}
		}
	}()
}

// Schedule registers or replaces the reminder of habit.
func (w *ReminderWorker) Schedule(habit *domain.Habit) {
	if !habit.NotificationEnabled || habit.NotificationTime == "" {
		w.Cancel(habit.ID)
		return
	}
	r := domain.NewReminder(habit, "")
	w.enqueue(reminderJob{habitID: habit.ID, reminder: &r})
}

func (w *ReminderWorker) Cancel(habitID string) {
	w.enqueue(reminderJob{habitID: habitID})
}

// ScheduleAll seeds the schedule from stored habits at startup.
func (w *ReminderWorker) ScheduleAll(habits []*domain.Habit) {
	for _, h := range habits {
		if h.NotificationEnabled {
			w.Schedule(h)
		}
	}
}

func (w *ReminderWorker) enqueue(job reminderJob) {
	select {
	case w.jobs <- job:
	default:
		log.Printf("[WORKER] Reminder queue full! Dropping job for habit %s", job.habitID)
	}
}

func (w *ReminderWorker) apply(job reminderJob) {
	if job.reminder == nil {
		delete(w.schedule, job.habitID)
		return
	}

	entry := &scheduled{reminder: *job.reminder}
	now := w.clock.Now()
	if old, ok := w.schedule[job.habitID]; ok && old.reminder.Time == entry.reminder.Time {
		entry.lastSent = old.lastSent
	} else if entry.reminder.Time < now.Format("15:04") {
		// Already past for today: the first reminder goes out tomorrow.
		entry.lastSent = domain.FormatDate(now)
	}
	w.schedule[job.habitID] = entry
}

func (w *ReminderWorker) dispatchDue(ctx context.Context, now time.Time) int {
	if len(w.schedule) == 0 {
		return 0
	}

	if w.settings != nil {
		settings, err := w.settings.Get(ctx)
		if err != nil {
			log.Printf("[WORKER] Error loading settings: %v", err)
			return 0
		}
		if !settings.NotificationsEnabled {
			return 0
		}
	}

	clock := now.Format("15:04")
	today := domain.FormatDate(now)
	sent := 0

	for id, entry := range w.schedule {
		// Due and unsent reminders are caught up, so a failed send or a
		// skipped minute is retried on the next tick.
		if entry.reminder.Time > clock || entry.lastSent == today {
			continue
		}

		r := entry.reminder
		r.Date = today
		if err := w.notifier.Notify(ctx, r); err != nil {
			log.Printf("[WORKER] Failed to send reminder for %s: %v", id, err)
			continue
		}

		entry.lastSent = today
		sent++
		log.Printf("[WORKER] Reminder sent for %s at %s", r.HabitName, clock)
	}

	return sent
}
