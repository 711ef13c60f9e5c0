// Package source defines the port conservation data sources implement and the
// normalized failure taxonomy they report through.
package source

import (
	"context"
	"errors"
	"fmt"

	"botanica/internal/conservation/models"
)

// Source looks up the current assessment for a scientific name.
//
// A source answers Found or NotFound. Any failure that means the source
// could not answer is returned as an error, preferably an *Error, which
// callers treat as the unavailable outcome.
type Source interface {
	ID() string
	Lookup(ctx context.Context, scientificName string) (models.LookupResult, error)
}

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the source took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the source returned invalid or malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates a rejected or missing API token
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorOutage indicates the source is unavailable or its circuit is open
	ErrorOutage ErrorCategory = "source_outage"

	// ErrorContractMismatch indicates the remote API changed shape
	ErrorContractMismatch ErrorCategory = "contract_mismatch"

	// ErrorNotFound indicates a remote resource other than the taxon is missing
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// Error wraps source failures with normalized categorization
type Error struct {
	Category   ErrorCategory
	SourceID   string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("source %s [%s]: %s: %v", e.SourceID, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("source %s [%s]: %s", e.SourceID, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a normalized source error. Timeouts, outages and rate
// limiting are retryable.
func NewError(category ErrorCategory, sourceID, message string, underlying error) *Error {
	retryable := category == ErrorTimeout ||
		category == ErrorOutage ||
		category == ErrorRateLimited

	return &Error{
		Category:   category,
		SourceID:   sourceID,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var se *Error
	if errors.As(err, &se) {
		return se.Category
	}
	return ErrorInternal
}
