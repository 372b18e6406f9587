package list

import (
	"fmt"

	"github.com/thenoetrevino/listo/internal/models"
)

// Domain errors for the list registry
var (
	// Validation errors
	ErrEmptyListName = fmt.Errorf("%w: list name cannot be empty", models.ErrValidation)
	ErrListExists    = fmt.Errorf("%w: list already exists", models.ErrValidation)

	// Lookup errors
	ErrListNotFound = fmt.Errorf("%w: list not found", models.ErrNotFound)
	ErrNoActiveList = fmt.Errorf("%w: no list selected", models.ErrNotFound)
)
