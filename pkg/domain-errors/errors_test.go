package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_RendersPrefix(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		err := New(CodeValidation, "Query cannot be empty")
		assert.Equal(t, "Validation error: Query cannot be empty", err.Error())
	})

	t.Run("not found", func(t *testing.T) {
		err := New(CodeNotFound, "species")
		assert.Equal(t, "Not found: species", err.Error())
	})

	t.Run("context source with cause", func(t *testing.T) {
		err := Wrap(errors.New("dial tcp: refused"), CodeContextSource, "recommend")
		assert.Equal(t, "ContextLite error: recommend: dial tcp: refused", err.Error())
	})

	t.Run("codes without prefix render the bare message", func(t *testing.T) {
		err := New(CodeBadRequest, "invalid json")
		assert.Equal(t, "invalid json", err.Error())
	})
}

func TestHasCode_WalksChain(t *testing.T) {
	inner := New(CodeNotFound, "genus")
	outer := Wrap(inner, CodeInternal, "load species")
	wrapped := fmt.Errorf("handler: %w", outer)

	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(wrapped, CodeValidation))
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	assert.False(t, HasCode(nil, CodeInternal))
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, CodeInternal, "noop"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeTimeout, CodeOf(New(CodeTimeout, "slow")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
