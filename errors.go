// errors.go
package pacgo

import (
	"fmt"

	"pacgo/pkg/backend"
	"pacgo/pkg/op"
)

var (
	// ErrInvalidOperation indicates a malformed operation
	ErrInvalidOperation = op.ErrInvalidOperation

	// ErrNoBackendAvailable indicates no package manager could be selected
	ErrNoBackendAvailable = backend.ErrNoBackendAvailable

	// ErrUnsupportedOperation indicates the backend has no translation for
	// the operation
	ErrUnsupportedOperation = backend.ErrUnsupportedOperation
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed, in pacman short form
	Backend string // Backend name if one was selected
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
