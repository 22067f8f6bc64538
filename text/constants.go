package text

const (
	// SimilarityThreshold is the word-overlap ratio two lines must exceed to
	// be treated as one edited line (modify) rather than an unrelated
	// deletion and insertion. The comparison is strict: a ratio equal to the
	// threshold is not related.
	SimilarityThreshold = 0.3

	// lineSeparator splits transcripts into lines. A trailing separator
	// yields a trailing empty line.
	lineSeparator = "\n"
)
