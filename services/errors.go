package services

import "errors"

// Callers match these with errors.Is; concrete errors wrap them with context.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrConcurrency = errors.New("concurrent modification")
	ErrForbidden   = errors.New("forbidden")
)
