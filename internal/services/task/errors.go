package task

import (
	"fmt"

	"github.com/thenoetrevino/listo/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyDescription = fmt.Errorf("%w: task description cannot be empty", models.ErrValidation)

	// Lookup errors
	ErrInvalidTaskNumber = fmt.Errorf("%w: invalid task number", models.ErrNotFound)
)
