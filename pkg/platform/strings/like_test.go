package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text unchanged", input: "Welwitschia", expected: "Welwitschia"},
		{name: "percent", input: "100%", expected: `100\%`},
		{name: "underscore", input: "quercus_robur", expected: `quercus\_robur`},
		{name: "backslash escaped first", input: `a\%`, expected: `a\\\%`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLike(tt.input))
		})
	}
}
