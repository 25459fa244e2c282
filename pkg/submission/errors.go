package submission

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a required field was absent or empty.
	ErrMissingField = errors.New("missing required field")
	// ErrNilPayload indicates Normalize was called with a nil field map.
	ErrNilPayload = errors.New("nil submission payload")
)

// MissingFieldError carries the name of the missing field for internal
// logging. User-facing responses must not expose it; callers match on
// ErrMissingField and return a generic message.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
