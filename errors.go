package tempo

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every constructor error: non-positive
	// durations, unknown directions or modes, empty combinators.
	ErrConfiguration = errors.New("tempo: invalid configuration")

	// ErrNotFound is returned when detaching a handle the runner does not
	// hold, either because it was already reaped or never belonged to it.
	ErrNotFound = errors.New("tempo: action not found")
)

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// CallbackError wraps an error returned by a CallFunc or CallFuncS callback.
type CallbackError struct {
	Action string
	Err    error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("tempo: %s callback: %v", e.Action, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
