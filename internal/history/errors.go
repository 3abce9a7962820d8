package history

import "errors"

// Errors returned by history operations.
var (
	// ErrNilCommand indicates a nil command was passed to the stack.
	ErrNilCommand = errors.New("nil command")
)
