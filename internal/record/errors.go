package record

import "errors"

var (
	// ErrNotFound is returned when a task does not exist or belongs to
	// another identity. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("task not found")
	// ErrNotReady is returned when an export is requested before the task
	// reached its terminal state.
	ErrNotReady = errors.New("task not completed")
	// ErrNoCaseNumbers is returned when the submitted input contains no
	// token matching the case-number pattern.
	ErrNoCaseNumbers = errors.New("no valid case numbers recognized")
)
