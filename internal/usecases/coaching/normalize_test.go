package coaching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected *float64
	}{
		{
			name:     "nil is absent",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty string is absent",
			input:    "",
			expected: nil,
		},
		{
			name:     "float passes through",
			input:    42.5,
			expected: floatPtr(42.5),
		},
		{
			name:     "int converts to float",
			input:    7,
			expected: floatPtr(7),
		},
		{
			name:     "zero is a value, not absence",
			input:    0.0,
			expected: floatPtr(0),
		},
		{
			name:     "plain numeric string",
			input:    "12.5",
			expected: floatPtr(12.5),
		},
		{
			name:     "percent-suffixed string",
			input:    "90%",
			expected: floatPtr(90),
		},
		{
			name:     "percent string with surrounding whitespace",
			input:    "  72.5%  ",
			expected: floatPtr(72.5),
		},
		{
			name:     "non-numeric string is absent",
			input:    "N/A",
			expected: nil,
		},
		{
			name:     "unsupported type is absent",
			input:    true,
			expected: nil,
		},
		{
			name:     "mapping is absent",
			input:    map[string]any{"nested": 1},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizeValue(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
