package models

import "strings"

// Task represents a single to-do entry in a list
type Task struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	Deadline    *Date   `json:"deadline"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
}

// Status glyphs used when rendering a task line
const (
	CompletedMark  = "✓"
	IncompleteMark = "✗"
)

// Clone returns a deep copy of the task so callers can't mutate
// the optional fields of a stored task through shared pointers.
func (t Task) Clone() Task {
	c := t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	if t.Category != nil {
		s := *t.Category
		c.Category = &s
	}
	return c
}

// StatusMark returns the status glyph for the task
func (t Task) StatusMark() string {
	if t.Completed {
		return CompletedMark
	}
	return IncompleteMark
}

// String renders the task as a single display line:
// [✓] description, Deadline: D, Priority: P, Category: C
// Optional parts are only included when present.
func (t Task) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(t.StatusMark())
	b.WriteString("] ")
	b.WriteString(t.Description)
	if t.Deadline != nil {
		b.WriteString(", Deadline: ")
		b.WriteString(t.Deadline.String())
	}
	if t.Priority != "" {
		b.WriteString(", Priority: ")
		b.WriteString(t.Priority)
	}
	if t.Category != nil && *t.Category != "" {
		b.WriteString(", Category: ")
		b.WriteString(*t.Category)
	}
	return b.String()
}

// StringPtr returns a pointer to s, or nil when s is blank.
// Used to turn user input into an optional field.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
