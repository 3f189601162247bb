package domain

import "fmt"

// Reminder is the message dispatched when a habit's notification time comes up.
type Reminder struct {
	HabitID   string `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Icon      string `json:"icon"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

func NewReminder(h *Habit, date string) Reminder {
	return Reminder{
		HabitID:   h.ID,
		HabitName: h.Name,
		Icon:      h.Icon,
		Time:      h.NotificationTime,
		Date:      date,
		Message:   fmt.Sprintf("Time for %s!", h.Name),
	}
}
