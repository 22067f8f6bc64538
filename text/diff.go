package text

import (
	"strings"

	"transcriptdiff/logger"
)

// Stats counts changed line records. Equal records are not counted and a
// modify record counts once.
type Stats struct {
	Added    int
	Removed  int
	Modified int
}

// Total returns the number of changed records
func (s Stats) Total() int {
	return s.Added + s.Removed + s.Modified
}

// Result is a fully materialized comparison of two texts.
type Result struct {
	Records []Record
	Stats   Stats
}

// HasChanges reports whether any record is not equal
func (r *Result) HasChanges() bool {
	return r.Stats.Total() > 0
}

// Changes returns the records that are not equal, in order
func (r *Result) Changes() []Record {
	var changes []Record
	for _, rec := range r.Records {
		if rec.Tag() != TagEqual {
			changes = append(changes, rec)
		}
	}
	return changes
}

// Options tunes a comparison
type Options struct {
	// SimilarityThreshold is the strict lower bound on word overlap for
	// pairing a deleted and an inserted line as a modification.
	SimilarityThreshold float64
}

// DefaultOptions returns the options used by ComputeDiff
func DefaultOptions() Options {
	return Options{SimilarityThreshold: SimilarityThreshold}
}

// ComputeDiff compares an original text with its revision line by line,
// with word-level detail for modified lines.
func ComputeDiff(original, revised string) *Result {
	return ComputeDiffWithOptions(original, revised, DefaultOptions())
}

// ComputeDiffWithOptions is ComputeDiff with a custom similarity threshold.
func ComputeDiffWithOptions(original, revised string, opts Options) *Result {
	defer logger.Trace("text.ComputeDiff")()

	records := DiffLines(SplitLines(original), SplitLines(revised), opts.SimilarityThreshold)

	result := &Result{Records: records}
	for _, rec := range records {
		switch rec.Tag() {
		case TagInsert:
			result.Stats.Added++
		case TagDelete:
			result.Stats.Removed++
		case TagModify:
			result.Stats.Modified++
		}
	}
	return result
}

// SplitLines splits text on newlines, keeping a trailing empty line when the
// text ends with a newline. The empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, lineSeparator)
}
