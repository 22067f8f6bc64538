package utils

import (
	"errors"
	"fmt"

	"transcriptdiff/text"
)

// ErrInputTooLarge is returned when a text pair exceeds the configured diff
// limits. The line and word tables grow with the product of both sides, so
// oversized input is rejected before diffing.
var ErrInputTooLarge = errors.New("input too large to diff")

// Limits bounds the input accepted for a comparison. Zero disables a limit.
type Limits struct {
	MaxLines      int // per side
	MaxLineTokens int // per line, words and whitespace runs
}

// SizeError describes which limit a text exceeded
type SizeError struct {
	Side  string // "original" or "revised"
	Line  int    // 1-indexed, 0 for whole-text limits
	What  string // "lines" or "tokens"
	Size  int
	Limit int
}

func (e *SizeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s line %d has %d %s (limit %d)", ErrInputTooLarge, e.Side, e.Line, e.Size, e.What, e.Limit)
	}
	return fmt.Sprintf("%s: %s has %d %s (limit %d)", ErrInputTooLarge, e.Side, e.Size, e.What, e.Limit)
}

func (e *SizeError) Unwrap() error {
	return ErrInputTooLarge
}

// CheckDiffSize verifies both texts are within limits. The returned error
// matches ErrInputTooLarge and is a *SizeError.
func CheckDiffSize(original, revised string, limits Limits) error {
	if err := checkSide("original", original, limits); err != nil {
		return err
	}
	return checkSide("revised", revised, limits)
}

func checkSide(side, content string, limits Limits) error {
	lines := text.SplitLines(content)
	if limits.MaxLines > 0 && len(lines) > limits.MaxLines {
		return &SizeError{Side: side, What: "lines", Size: len(lines), Limit: limits.MaxLines}
	}

	if limits.MaxLineTokens <= 0 {
		return nil
	}
	for i, line := range lines {
		// A line cannot hold more tokens than bytes
		if len(line) <= limits.MaxLineTokens {
			continue
		}
		if n := len(text.Tokenize(line)); n > limits.MaxLineTokens {
			return &SizeError{Side: side, Line: i + 1, What: "tokens", Size: n, Limit: limits.MaxLineTokens}
		}
	}
	return nil
}
