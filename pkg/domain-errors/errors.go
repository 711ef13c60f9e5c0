// Package domainerrors carries coded errors across service boundaries.
//
// Services return *Error values so transports can map them to status codes
// without string matching. Infrastructure layers return sentinels from
// pkg/platform/sentinel instead and let services translate them.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure. The string value is what the HTTP
// layer puts in the "error" field of a response body.
type Code string

const (
	CodeValidation    Code = "validation_error"
	CodeInvalidInput  Code = "invalid_input"
	CodeBadRequest    Code = "bad_request"
	CodeNotFound      Code = "not_found"
	CodeConfig        Code = "configuration_error"
	CodeContextSource Code = "context_source_error"
	CodeConstraint    Code = "constraint_violation"
	CodeDatabase      Code = "database_error"
	CodeMigration     Code = "migration_error"
	CodeUnauthorized  Code = "unauthorized"
	CodeUnavailable   Code = "unavailable"
	CodeTimeout       Code = "timeout"
	CodeInternal      Code = "internal_error"
)

// prefixes mirror the human-readable rendering used in logs and CLI output.
var prefixes = map[Code]string{
	CodeValidation:    "Validation error: ",
	CodeInvalidInput:  "Validation error: ",
	CodeNotFound:      "Not found: ",
	CodeConfig:        "Configuration error: ",
	CodeContextSource: "ContextLite error: ",
	CodeConstraint:    "Constraint violation: ",
	CodeDatabase:      "Database error: ",
	CodeMigration:     "Migration error: ",
}

// Error is a coded domain error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := prefixes[e.Code] + e.Message
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Newf builds a coded error from a format string.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// As extracts the outermost *Error from err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is errors.Is, re-exported so callers importing dErrors need not import errors too.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// CodeOf returns the code of the outermost *Error, or CodeInternal.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}
