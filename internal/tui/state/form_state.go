package state

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/listo/internal/models"
)

// FormState holds the task form and the values its fields write to.
// The model keeps a pointer to it so the field pointers stay valid
// across model copies.
type FormState struct {
	TaskForm *huh.Form

	// EditingNumber is the 1-based number of the task being edited,
	// 0 when adding
	EditingNumber int

	Description string
	Deadline    string
	Priority    string
	Category    string
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// StartAdd resets the values for a new task with the given default priority
func (s *FormState) StartAdd(defaultPriority string) {
	s.Clear()
	s.Priority = defaultPriority
}

// StartEdit fills the values from task n
func (s *FormState) StartEdit(n int, t models.Task) {
	s.Clear()
	s.EditingNumber = n
	s.Description = t.Description
	s.Priority = t.Priority
	if t.Deadline != nil {
		s.Deadline = t.Deadline.String()
	}
	if t.Category != nil {
		s.Category = *t.Category
	}
}

// Clear drops the form and its values
func (s *FormState) Clear() {
	*s = FormState{}
}
