package errors

import (
	"fmt"
)

// ParseError represents a catalog parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a catalog schema violation. Record identifies the
// offending book/author/genre entry when the failure is record-scoped.
type ValidationError struct {
	Record  string
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(record, field, message string, err error) error {
	return &ValidationError{Record: record, Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Record != "" && e.Field != "":
		return fmt.Sprintf("validation error: %s: %s: %s", e.Record, e.Field, e.Message)
	case e.Field != "":
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
