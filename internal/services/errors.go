package services

import "errors"

// Shared service errors. Handlers map these onto API error codes with
// errors.Is; services wrap them with fmt.Errorf("%w: ...") to add context.
var (
	// ErrValidation covers rejected input: empty descriptions, non-positive
	// quantities or amounts, negative stock levels.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a referenced record does not exist, e.g. a
	// sale index past the end of the log.
	ErrNotFound = errors.New("record not found")
)
