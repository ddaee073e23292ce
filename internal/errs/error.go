package errs

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ValidationError carries every field-level message collected for a
// rejected write. Integrity violations reported by the store (duplicate
// library id, dangling loan reference) are folded into the same type.
type ValidationError struct {
	Messages []string
}

func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
