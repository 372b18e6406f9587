// Package huhforms builds the huh forms used by the TUI
package huhforms

import (
	"slices"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/listo/internal/models"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// Priorities offered by the priority select, highest first
var Priorities = []string{"high", "medium", "low"}

// CreateTaskForm creates a huh form for adding or editing a task.
// Fields write through the pointers as the user types.
func CreateTaskForm(description, deadline, priority, category *string) *huh.Form {
	options := Priorities
	if *priority != "" && !slices.Contains(options, *priority) {
		options = append(slices.Clone(options), *priority)
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("description").
			Title("Description").
			Placeholder("What needs doing?").
			CharLimit(200).
			Validate(ValidateDescription).
			Value(description),

		huh.NewInput().
			Key("deadline").
			Title("Deadline (optional)").
			Placeholder(models.DateLayout).
			Validate(ValidateDeadline).
			Value(deadline),

		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(huh.NewOptions(options...)...).
			Value(priority),

		huh.NewInput().
			Key("category").
			Title("Category (optional)").
			Placeholder("e.g. home").
			Value(category),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// ValidateDescription rejects blank descriptions
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return taskservice.ErrEmptyDescription
	}
	return nil
}

// ValidateDeadline accepts a blank value or a YYYY-MM-DD date
func ValidateDeadline(s string) error {
	_, err := models.ParseDeadline(strings.TrimSpace(s))
	return err
}
