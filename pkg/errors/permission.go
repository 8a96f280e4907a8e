package errors

import (
	"fmt"
	"strings"
)

// NewPermissionError creates a new permission error.
func NewPermissionError(code int, field string, messages ...string) *PermissionError {
	return &PermissionError{
		Code:     code,
		Field:    field,
		Messages: messages,
	}
}

// Error returns the error message.
func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}
