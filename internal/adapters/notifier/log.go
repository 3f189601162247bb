package notifier

import (
	"context"
	"log"

	"github.com/comitanigiacomo/kanso-tracker/internal/core/domain"
)

// LogNotifier writes reminders to the process log. Used when no broker is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, r domain.Reminder) error {
	log.Printf("[REMINDER] %s %s (habit %s, %s)", r.Icon, r.Message, r.HabitID, r.Time)
	return nil
}
