package catalog

import (
	"errors"
	"fmt"
)

// Common registry and runner errors.
var (
	// ErrNotFound is returned when a reference matches no example.
	ErrNotFound = errors.New("example not found")

	// ErrDuplicateTopic is returned when a topic is registered twice.
	ErrDuplicateTopic = errors.New("duplicate example topic")

	// ErrInvalidExample is returned for examples without a topic or body.
	ErrInvalidExample = errors.New("invalid example")

	// ErrOutputMismatch is the cause recorded when output differs from Expected.
	ErrOutputMismatch = errors.New("output does not match expected")

	// ErrBodyPanic is the cause recorded when an example body panics.
	ErrBodyPanic = errors.New("example panicked")
)

// ExecutionError reports that an example body could not complete as written.
type ExecutionError struct {
	Topic string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("example %q failed: %v", e.Topic, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsExecutionError reports whether err carries an ExecutionError.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError
	return errors.As(err, &execErr)
}
