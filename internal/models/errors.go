package models

import "errors"

// Error kinds shared by every layer. Concrete errors wrap exactly one of
// these so the presentation layer can classify them with errors.Is.
var (
	// ErrValidation indicates rejected user input (e.g. an empty description)
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a missing task number or list name
	ErrNotFound = errors.New("not found")

	// ErrPersistence indicates the backing store could not be read or written
	ErrPersistence = errors.New("persistence error")

	// ErrDataCorruption indicates a stored document could not be decoded
	ErrDataCorruption = errors.New("data corrupted")
)
