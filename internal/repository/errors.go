package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is not found; callers
	// translate it into a 404, never into an infrastructure failure
	ErrTaskNotFound = errors.New("task not found")
)
