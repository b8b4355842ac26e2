package domain

import (
	"errors"
	"strings"
)

var ErrAccessDenied = errors.New("access denied")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email address already registered")
var ErrCourseNotFound = errors.New("course not found")
var ErrNotCourseOwner = errors.New("course belongs to another user")

// FieldViolation is a single broken validation rule on a named field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries every rule violated by one request, in field
// declaration order. It maps to a 400 response listing all messages, never
// just the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns the client-facing message list.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// NewValidationError builds a ValidationError from message strings.
func NewValidationError(messages ...string) *ValidationError {
	ve := &ValidationError{}
	for _, m := range messages {
		ve.Violations = append(ve.Violations, FieldViolation{Message: m})
	}
	return ve
}
