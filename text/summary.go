package text

import (
	"fmt"
	"strings"
)

// Summarize describes the size change from original to revised as word and
// line deltas, e.g. "+12 words, -2 lines". Lines are counted on the trimmed
// text. Returns "Minor formatting changes" when neither count moved.
func Summarize(original, revised string) string {
	wordDelta := len(strings.Fields(revised)) - len(strings.Fields(original))
	lineDelta := countLines(revised) - countLines(original)

	var parts []string
	if wordDelta != 0 {
		parts = append(parts, fmt.Sprintf("%+d words", wordDelta))
	}
	if lineDelta != 0 {
		parts = append(parts, fmt.Sprintf("%+d lines", lineDelta))
	}

	if len(parts) == 0 {
		return "Minor formatting changes"
	}
	return strings.Join(parts, ", ")
}

// countLines counts lines of the trimmed text; blank text counts as one line
func countLines(text string) int {
	return strings.Count(strings.TrimSpace(text), lineSeparator) + 1
}
