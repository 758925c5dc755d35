package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/theme/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			width:    4,
			expected: "",
		},
		{
			name:     "no tabs",
			input:    "hello world",
			width:    4,
			expected: "hello world",
		},
		{
			name:     "leading tab fills a full stop",
			input:    "\tx",
			width:    4,
			expected: "    x",
		},
		{
			name:     "tab after text pads to the next stop",
			input:    "ab\tc",
			width:    4,
			expected: "ab  c",
		},
		{
			name:     "tab on a stop advances a full stop",
			input:    "abcd\te",
			width:    4,
			expected: "abcd    e",
		},
		{
			name:     "columns reset after newlines",
			input:    "abc\n\tx",
			width:    4,
			expected: "abc\n    x",
		},
		{
			name:     "wide runes count as two columns",
			input:    "日\tx",
			width:    4,
			expected: "日  x",
		},
		{
			name:     "non-positive width leaves tabs",
			input:    "\tx",
			width:    0,
			expected: "\tx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, bubbletea.ExpandTabs(tt.input, tt.width))
		})
	}
}
