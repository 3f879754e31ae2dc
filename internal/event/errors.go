package event

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no stored event has the requested id.
var ErrNotFound = errors.New("event not found")

// ValidationError reports required fields that were empty after trimming.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
