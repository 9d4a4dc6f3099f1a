package manager

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when an operation names a process that has no
// spec in the current configuration.
var ErrNotConfigured = errors.New("process not configured")

// SpawnError wraps the underlying cause of a failed process launch.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string { return fmt.Sprintf("spawn %q: %v", e.Name, e.Err) }

func (e *SpawnError) Unwrap() error { return e.Err }
