package facts

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when a data source exists but can't be parsed.
	ErrMalformed = errors.New("malformed")

	// ErrNotFound is returned when a value is absent from its data source.
	ErrNotFound = errors.New("not found")
)

// FieldError is returned by Gather when a fatal field can't be read.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

func malformed(path, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", path, fmt.Sprintf(format, args...), ErrMalformed)
}
