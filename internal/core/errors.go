package core

// errors.go defines the error kinds produced by a transformation run.
//
//   - FieldError: one rejected field in one row (missing required field or
//     hook rejection)
//   - RowError: every FieldError raised while transforming a single row
//   - ValidationError: the run failed because a row was rejected
//   - MalformedInputError: the text itself is unusable (empty, ragged,
//     bad header, bad nested column name)
//
// ErrSchemaNotFound is returned by Lookup, never by the transformer.

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaNotFound is returned when no schema is registered under a name.
var ErrSchemaNotFound = errors.New("schema not found")

// ErrEmptyInput is wrapped by MalformedInputError when there is no header.
var ErrEmptyInput = errors.New("empty input")

// FieldErrorKind distinguishes why a field was rejected.
type FieldErrorKind int

const (
	RequiredFieldMissing FieldErrorKind = iota
	FieldValidationFailed
)

func (k FieldErrorKind) String() string {
	switch k {
	case RequiredFieldMissing:
		return "required"
	case FieldValidationFailed:
		return "invalid"
	default:
		return "unknown"
	}
}

// FieldError is a single field-level failure.
type FieldError struct {
	Kind    FieldErrorKind
	Field   string // Field name or hook key
	Value   string // The rejected raw value (empty for missing fields)
	Message string // Human-readable message
}

func (e FieldError) Error() string {
	return e.Message
}

// RowError collects every FieldError raised while transforming one row.
// It is created per row and never shared between rows or runs.
type RowError struct {
	Line   int // 1-based line number in the input, header is line 1
	Errors []FieldError
}

func (e *RowError) add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}

func (e *RowError) empty() bool {
	return len(e.Errors) == 0
}

// Messages returns the messages of all field errors in the order raised.
func (e *RowError) Messages() []string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}
	return msgs
}

func (e *RowError) Error() string {
	return strings.Join(e.Messages(), ", ")
}

// ValidationError reports that a row of the input was rejected.
// The run stops at the first rejected row.
type ValidationError struct {
	Schema string
	Row    *RowError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s at line %d: %s", e.Schema, e.Row.Line, e.Row.Error())
}

// Messages returns all messages of the rejected row.
func (e *ValidationError) Messages() []string {
	return e.Row.Messages()
}

// Unwrap exposes the underlying row error.
func (e *ValidationError) Unwrap() error {
	return e.Row
}

// MalformedInputError reports structurally unusable input.
type MalformedInputError struct {
	Line   int // 0 when not tied to a line
	Reason string
	Err    error // Optional cause
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid csv at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid csv: %s", e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func malformed(line int, format string, args ...any) *MalformedInputError {
	return &MalformedInputError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
