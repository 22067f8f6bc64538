package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "two words",
			input: "hello world",
			expected: []Token{
				{Text: "hello"},
				{Text: " ", Space: true},
				{Text: "world"},
			},
		},
		{
			name:  "leading whitespace run",
			input: "  lead",
			expected: []Token{
				{Text: "  ", Space: true},
				{Text: "lead"},
			},
		},
		{
			name:  "mixed whitespace is one run",
			input: "a\t \tb ",
			expected: []Token{
				{Text: "a"},
				{Text: "\t \t", Space: true},
				{Text: "b"},
				{Text: " ", Space: true},
			},
		},
		{
			name:  "punctuation stays with word",
			input: "well, ok.",
			expected: []Token{
				{Text: "well,"},
				{Text: " ", Space: true},
				{Text: "ok."},
			},
		},
		{
			name:  "multibyte characters",
			input: "héllo  wörld",
			expected: []Token{
				{Text: "héllo"},
				{Text: "  ", Space: true},
				{Text: "wörld"},
			},
		},
		{
			name:     "only whitespace",
			input:    " \t ",
			expected: []Token{{Text: " \t ", Space: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input), "tokens")
		})
	}
}

func TestTokenizeReconstructs(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"  spaced   out  ",
		"سلام دنیا",
		"tab\tseparated\tvalues",
		"ends with space ",
		" non-breaking space",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		assert.Equal(t, input, joinTokens(tokens), "reconstruction of %q", input)
		for i, tok := range tokens {
			assert.NotEmpty(t, tok.Text, "token %d of %q", i, input)
			if i > 0 {
				assert.NotEqual(t, tokens[i-1].Space, tok.Space, "tokens alternate in %q", input)
			}
		}
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, words("  a   b  "))
	assert.Empty(t, words("   "))
	assert.Empty(t, words(""))
}
