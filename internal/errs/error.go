package errs

import (
	"errors"
	"strings"
)

// Kind classifies an Error.
type Kind string

const (
	KindNotFound Kind = "not_found"
	KindInvalid  Kind = "invalid"
	KindInternal Kind = "internal"
)

// FieldError represents a column-level problem, e.g. a NOT NULL violation.
type FieldError struct {
	Field string
	Error string
}

// Error is the main custom error type.
//
// Fields:
//   - Kind: coarse category used for errors.Is matching.
//   - Code: machine-friendly code (e.g. "ARTIST_NOT_FOUND").
//   - Message: human-friendly message.
//   - Errors: per-field errors (constraint violations).
//   - Err: the underlying cause, if any.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Errors  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
// A target without a Kind matches any *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNotFound = &Error{Kind: KindNotFound}
	ErrInvalid  = &Error{Kind: KindInvalid}
	ErrInternal = &Error{Kind: KindInternal}
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
func IsInvalid(err error) bool  { return errors.Is(err, ErrInvalid) }

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Not Found" -> "NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
