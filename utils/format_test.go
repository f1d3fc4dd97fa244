package utils_test

import (
	"testing"

	"fitness-app/utils"

	"github.com/stretchr/testify/assert"
)

func TestFormatListString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"empty brackets", "[]", ""},
		{"empty quotes", "''", ""},
		{"empty quoted list", "['']", ""},
		{"three items", "['a', 'b', 'c']", "• a\n• b\n• c"},
		{"single item", "['only one']", "• only one"},
		{"segments are trimmed", "['  eggs ', '  milk ']", "• eggs\n• milk"},
		{"no brackets still formatted", "'a', 'b'", "• a\n• b"},
		{"plain text single bullet", "just some text", "• just some text"},
		{"unbalanced bracket kept", "[abc", "• [abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatListString(tt.input))
		})
	}
}
