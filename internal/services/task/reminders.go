package task

import (
	"github.com/thenoetrevino/listo/internal/locale"
	"github.com/thenoetrevino/listo/internal/models"
)

// ReminderKind tells whether a deadline is today or already passed
type ReminderKind int

const (
	DueToday ReminderKind = iota
	Overdue
)

func (k ReminderKind) String() string {
	if k == Overdue {
		return "overdue"
	}
	return "due today"
}

// Reminder is produced for each task whose deadline is today or earlier
type Reminder struct {
	Task    models.Task
	Kind    ReminderKind
	Message string
}

func (r Reminder) String() string {
	return r.Message
}

// CheckDeadlines returns one reminder per task due on or before today,
// in list order. Completed tasks are included; tasks without a deadline
// and tasks due later produce nothing.
func (s *Store) CheckDeadlines(today models.Date) []Reminder {
	var reminders []Reminder
	for _, t := range s.tasks {
		if t.Deadline == nil {
			continue
		}

		switch c := t.Deadline.Compare(today); {
		case c == 0:
			reminders = append(reminders, Reminder{
				Task:    t.Clone(),
				Kind:    DueToday,
				Message: s.printer.Sprintf(locale.ReminderDueToday, t.Description),
			})
		case c < 0:
			reminders = append(reminders, Reminder{
				Task:    t.Clone(),
				Kind:    Overdue,
				Message: s.printer.Sprintf(locale.ReminderOverdue, t.Description, t.Deadline.String()),
			})
		}
	}
	return reminders
}
