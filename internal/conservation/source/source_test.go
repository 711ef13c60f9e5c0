package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError_Retryable(t *testing.T) {
	tests := []struct {
		category  ErrorCategory
		retryable bool
	}{
		{ErrorTimeout, true},
		{ErrorOutage, true},
		{ErrorRateLimited, true},
		{ErrorBadData, false},
		{ErrorAuthentication, false},
		{ErrorContractMismatch, false},
		{ErrorNotFound, false},
		{ErrorInternal, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			err := NewError(tt.category, "iucn", "boom", nil)
			assert.Equal(t, tt.retryable, err.Retryable)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestGetCategory_ThroughWrapping(t *testing.T) {
	inner := NewError(ErrorTimeout, "iucn", "request timed out", context.DeadlineExceeded)
	wrapped := fmt.Errorf("lookup Abies alba: %w", inner)

	assert.Equal(t, ErrorTimeout, GetCategory(wrapped))
	assert.True(t, IsRetryable(wrapped))
	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
}

func TestGetCategory_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, ErrorInternal, GetCategory(errors.New("boom")))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestError_Message(t *testing.T) {
	err := NewError(ErrorAuthentication, "iucn", "token rejected", nil)
	assert.Equal(t, "source iucn [authentication]: token rejected", err.Error())
}
