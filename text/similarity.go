package text

import "strings"

// Similarity returns the word-overlap ratio between two lines: the number
// of word occurrences in a that also appear in b, divided by the larger
// word count. Each occurrence in a is counted on its own, so repeated words
// in a may all match a single occurrence in b. Blank lines score 0.
func Similarity(a, b string) float64 {
	wordsA := words(a)
	wordsB := words(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	present := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		present[w] = struct{}{}
	}

	matches := 0
	for _, w := range wordsA {
		if _, ok := present[w]; ok {
			matches++
		}
	}

	return float64(matches) / float64(max(len(wordsA), len(wordsB)))
}

// IsRelated reports whether two lines are similar enough to be shown as one
// edited line. A blank line is never related to anything.
func IsRelated(a, b string, threshold float64) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	return Similarity(a, b) > threshold
}
