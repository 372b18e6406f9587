package models

import "strings"

// Priority values offered by the interfaces. Priority is stored as
// free-form text, so any other string is accepted as well.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultPriority is used when a task is added without one
const DefaultPriority = PriorityMedium

// PriorityRank orders priorities for sorting: high=3, medium=2, low=1.
// Unknown values rank 0 and sort last.
func PriorityRank(p string) int {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case PriorityHigh, "высокий":
		return 3
	case PriorityMedium, "средний":
		return 2
	case PriorityLow, "низкий":
		return 1
	}
	return 0
}
