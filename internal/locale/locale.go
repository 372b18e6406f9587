// Package locale holds the translated user-facing strings of the task core
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. They double as the English text.
const (
	StatusCompleted    = "Completed"
	StatusNotCompleted = "Not completed"
	ReminderDueToday   = "Task '%s' is due today"
	ReminderOverdue    = "Task '%s' is overdue (deadline %s)"
)

// Supported lists the languages with a catalog entry for every key
var Supported = []language.Tag{language.English, language.Russian}

var translations = map[language.Tag]map[string]string{
	language.English: {
		StatusCompleted:    StatusCompleted,
		StatusNotCompleted: StatusNotCompleted,
		ReminderDueToday:   ReminderDueToday,
		ReminderOverdue:    ReminderOverdue,
	},
	language.Russian: {
		StatusCompleted:    "Выполнена",
		StatusNotCompleted: "Не выполнена",
		ReminderDueToday:   "Задача '%s' должна быть выполнена сегодня",
		ReminderOverdue:    "Задача '%s' просрочена (срок %s)",
	},
}

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

var matcher = language.NewMatcher(Supported)

// NewPrinter returns a printer for the given BCP 47 tag ("en", "ru-RU", ...).
// Unknown or empty tags fall back to English.
func NewPrinter(tag string) *message.Printer {
	return message.NewPrinter(Match(tag))
}

// Match resolves a user supplied tag to one of the supported languages
func Match(tag string) language.Tag {
	if tag == "" {
		return language.English
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.English
	}
	return Supported[idx]
}
