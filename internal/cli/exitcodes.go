package cli

import (
	"errors"

	"github.com/thenoetrevino/listo/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, or when no list was given.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown list names and task numbers out of range.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: corrupted list documents and snapshots.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty descriptions, empty list names, malformed dates.
	ExitValidation = 5
)

// UsageError marks an error as a command usage mistake
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage), errors.Is(err, ErrNoList):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrDataCorruption):
		return ExitDataErr
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code printed in JSON errors
func ErrorCode(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage), errors.Is(err, ErrNoList):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, models.ErrDataCorruption):
		return "DATA_CORRUPTION"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrPersistence):
		return "PERSISTENCE_ERROR"
	default:
		return "ERROR"
	}
}
