package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a word or a maximal whitespace run within a line.
type Token struct {
	Text  string
	Space bool
}

// Tokenize splits s into alternating word and whitespace tokens.
// Concatenating the token texts in order yields s exactly. No token is empty.
func Tokenize(s string) []Token {
	if s == "" {
		return nil
	}

	tokens := make([]Token, 0, strings.Count(s, " ")*2+1)
	first, _ := utf8.DecodeRuneInString(s)
	inSpace := unicode.IsSpace(first)
	start := 0

	for i, r := range s {
		space := unicode.IsSpace(r)
		if space == inSpace {
			continue
		}
		tokens = append(tokens, Token{Text: s[start:i], Space: inSpace})
		start = i
		inSpace = space
	}
	tokens = append(tokens, Token{Text: s[start:], Space: inSpace})

	return tokens
}

// joinTokens concatenates token texts
func joinTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// words splits a line into its whitespace-separated words after trimming
func words(line string) []string {
	return strings.Fields(strings.TrimSpace(line))
}
