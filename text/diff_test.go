package text

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDiffIdentical(t *testing.T) {
	result := ComputeDiff("hello world", "hello world")

	expected := []Record{
		EqualRecord{
			Original: Line{Index: 0, Text: "hello world"},
			Revised:  Line{Index: 0, Text: "hello world"},
		},
	}
	assert.Equal(t, expected, result.Records, "records")
	assert.Equal(t, Stats{}, result.Stats, "stats")
	assert.False(t, result.HasChanges(), "no changes")
	assert.Empty(t, result.Changes(), "changes only view")
}

func TestComputeDiffModifiedLine(t *testing.T) {
	result := ComputeDiff("line one\nline two", "line one\nline three")

	require.Len(t, result.Records, 2)
	assert.Equal(t, EqualRecord{
		Original: Line{Index: 0, Text: "line one"},
		Revised:  Line{Index: 0, Text: "line one"},
	}, result.Records[0])

	mod, ok := result.Records[1].(ModifyRecord)
	require.True(t, ok, "second record is a modification")
	assert.Equal(t, Line{Index: 1, Text: "line two"}, mod.Original)
	assert.Equal(t, Line{Index: 1, Text: "line three"}, mod.Revised)
	assert.Equal(t, []string{"equal:line ", "delete:two", "insert:three"}, describeRuns(mod.Runs))
	assert.Equal(t, Stats{Modified: 1}, result.Stats)
}

func TestComputeDiffEmptyOriginal(t *testing.T) {
	result := ComputeDiff("", "new content")

	expected := []Record{
		InsertRecord{Revised: Line{Index: 0, Text: "new content"}},
	}
	assert.Equal(t, expected, result.Records)
	assert.Equal(t, Stats{Added: 1}, result.Stats)
}

func TestComputeDiffEmptyRevised(t *testing.T) {
	result := ComputeDiff("a\nb", "")

	expected := []Record{
		DeleteRecord{Original: Line{Index: 0, Text: "a"}},
		DeleteRecord{Original: Line{Index: 1, Text: "b"}},
	}
	assert.Equal(t, expected, result.Records)
	assert.Equal(t, Stats{Removed: 2}, result.Stats)
}

func TestComputeDiffBothEmpty(t *testing.T) {
	result := ComputeDiff("", "")

	assert.Empty(t, result.Records)
	assert.Equal(t, Stats{}, result.Stats)
}

func TestComputeDiffUnrelatedRemoval(t *testing.T) {
	result := ComputeDiff("alpha\nbeta\ngamma", "alpha\ngamma")

	expected := []Record{
		EqualRecord{Original: Line{Index: 0, Text: "alpha"}, Revised: Line{Index: 0, Text: "alpha"}},
		DeleteRecord{Original: Line{Index: 1, Text: "beta"}},
		EqualRecord{Original: Line{Index: 2, Text: "gamma"}, Revised: Line{Index: 1, Text: "gamma"}},
	}
	assert.Equal(t, expected, result.Records)
	assert.Equal(t, Stats{Removed: 1}, result.Stats)
}

func TestComputeDiffUnrelatedReplacement(t *testing.T) {
	result := ComputeDiff("the cat sat", "dogs run fast")

	expected := []Record{
		DeleteRecord{Original: Line{Index: 0, Text: "the cat sat"}},
		InsertRecord{Revised: Line{Index: 0, Text: "dogs run fast"}},
	}
	assert.Equal(t, expected, result.Records)
	assert.Equal(t, Stats{Added: 1, Removed: 1}, result.Stats)
}

func TestComputeDiffTrailingNewline(t *testing.T) {
	result := ComputeDiff("a", "a\n")

	expected := []Record{
		EqualRecord{Original: Line{Index: 0, Text: "a"}, Revised: Line{Index: 0, Text: "a"}},
		InsertRecord{Revised: Line{Index: 1, Text: ""}},
	}
	assert.Equal(t, expected, result.Records, "trailing empty line is kept")
	assert.Equal(t, Stats{Added: 1}, result.Stats)

	result = ComputeDiff("a\n", "a\n")
	assert.Len(t, result.Records, 2, "both lines equal")
	assert.False(t, result.HasChanges())
}

func TestComputeDiffTrimmedEquality(t *testing.T) {
	result := ComputeDiff("  hello \nworld", "hello\nworld")

	expected := []Record{
		EqualRecord{Original: Line{Index: 0, Text: "  hello "}, Revised: Line{Index: 0, Text: "hello"}},
		EqualRecord{Original: Line{Index: 1, Text: "world"}, Revised: Line{Index: 1, Text: "world"}},
	}
	assert.Equal(t, expected, result.Records, "edge whitespace does not count as a change")
}

func TestComputeDiffInteriorWhitespace(t *testing.T) {
	result := ComputeDiff("hello  world", "hello world")

	require.Len(t, result.Records, 1)
	mod, ok := result.Records[0].(ModifyRecord)
	require.True(t, ok, "interior whitespace change is a modification")
	assert.Equal(t, []string{"equal:hello", "delete:  ", "insert: ", "equal:world"}, describeRuns(mod.Runs))
}

func TestComputeDiffWithOptionsThreshold(t *testing.T) {
	original := "a b c d"
	revised := "a x y z"

	result := ComputeDiff(original, revised)
	assert.Equal(t, Stats{Added: 1, Removed: 1}, result.Stats, "0.25 overlap is below default threshold")

	result = ComputeDiffWithOptions(original, revised, Options{SimilarityThreshold: 0.2})
	assert.Equal(t, Stats{Modified: 1}, result.Stats, "0.25 overlap passes a lower threshold")
}

func TestDiffLinesTieBreakIsDirectional(t *testing.T) {
	forward := ComputeDiff("a b\nc", "a z")
	assert.Equal(t, []Record{
		DeleteRecord{Original: Line{Index: 0, Text: "a b"}},
		DeleteRecord{Original: Line{Index: 1, Text: "c"}},
		InsertRecord{Revised: Line{Index: 0, Text: "a z"}},
	}, forward.Records)

	backward := ComputeDiff("a z", "a b\nc")
	require.Len(t, backward.Records, 2)
	assert.Equal(t, TagModify, backward.Records[0].Tag())
	assert.Equal(t, InsertRecord{Revised: Line{Index: 1, Text: "c"}}, backward.Records[1])
}

func TestComputeDiffCountSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"line one\nline two", "line one\nline three"},
		{"alpha\nbeta\ngamma", "alpha\ngamma"},
		{"the quick brown fox", "the slow brown fox jumps"},
		{"", "new content"},
		{"intro\nthe cat sat\noutro", "intro\ndogs run fast\noutro"},
	}

	for _, pair := range pairs {
		forward := ComputeDiff(pair[0], pair[1])
		backward := ComputeDiff(pair[1], pair[0])
		assert.Equal(t, forward.Stats.Added, backward.Stats.Removed, "added/removed swap for %q", pair)
		assert.Equal(t, forward.Stats.Removed, backward.Stats.Added, "removed/added swap for %q", pair)
		assert.Equal(t, forward.Stats.Modified, backward.Stats.Modified, "modified invariant for %q", pair)
	}
}

// propertyCorpus holds transcript pairs exercised by the invariant tests
var propertyCorpus = [][2]string{
	{"", ""},
	{"hello world", "hello world"},
	{"line one\nline two", "line one\nline three"},
	{"alpha\nbeta\ngamma", "alpha\ngamma"},
	{"", "new content"},
	{"a b\nc", "a z"},
	{"a\n", "a"},
	{"\n\n", "\n"},
	{"  padded line  \nnext", "padded line\nnext one"},
	{
		"so um today we are going to talk about\nthe the history of rome\nand uh its empire\n",
		"Today we are going to talk about\nthe history of Rome\nand its empire.\nLet's begin.\n",
	},
	{
		"first\nsecond\nthird\nfourth\nfifth",
		"zeroth\nfirst\nthird\nfourth changed slightly\nfifth\nsixth",
	},
	{
		"x y z\nx y z\nx y z",
		"x y z\nq\nx y z w",
	},
}

func TestComputeDiffReconstruction(t *testing.T) {
	for _, pair := range propertyCorpus {
		result := ComputeDiff(pair[0], pair[1])

		var origLines, revLines []string
		for _, rec := range result.Records {
			if line, ok := OriginalSide(rec); ok {
				assert.Equal(t, len(origLines), line.Index, "original indices are consecutive for %q", pair)
				origLines = append(origLines, line.Text)
			}
			if line, ok := RevisedSide(rec); ok {
				assert.Equal(t, len(revLines), line.Index, "revised indices are consecutive for %q", pair)
				revLines = append(revLines, line.Text)
			}
		}

		assert.Equal(t, SplitLines(pair[0]), origLines, "original reconstructed for %q", pair)
		assert.Equal(t, SplitLines(pair[1]), revLines, "revised reconstructed for %q", pair)
	}
}

func TestComputeDiffInvariants(t *testing.T) {
	for _, pair := range propertyCorpus {
		result := ComputeDiff(pair[0], pair[1])
		m := len(SplitLines(pair[0]))
		n := len(SplitLines(pair[1]))

		equal := 0
		for _, rec := range result.Records {
			switch r := rec.(type) {
			case EqualRecord:
				equal++
				assert.Equal(t, strings.TrimSpace(r.Original.Text), strings.TrimSpace(r.Revised.Text))
			case ModifyRecord:
				assertRunInvariants(t, r.Original.Text, r.Revised.Text, r.Runs)
			}
		}

		assert.Equal(t, m, equal+result.Stats.Removed+result.Stats.Modified, "original line count for %q", pair)
		assert.Equal(t, n, equal+result.Stats.Added+result.Stats.Modified, "revised line count for %q", pair)
		assert.Equal(t, n-m, result.Stats.Added-result.Stats.Removed, "net growth for %q", pair)
	}
}

func TestComputeDiffIdempotentEquality(t *testing.T) {
	for _, pair := range propertyCorpus {
		for _, side := range pair {
			result := ComputeDiff(side, side)
			assert.Equal(t, Stats{}, result.Stats, "no changes for %q", side)
			for _, rec := range result.Records {
				assert.Equal(t, TagEqual, rec.Tag(), "all records equal for %q", side)
			}
		}
	}
}

// lcsLengthOracle counts equal lines in a minimal line diff of trimmed lines
func lcsLengthOracle(original, revised string) int {
	trimmed := func(s string) string {
		var b strings.Builder
		for _, line := range SplitLines(s) {
			b.WriteString(strings.TrimSpace(line))
			b.WriteString("\n")
		}
		return b.String()
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	chars1, chars2, lineArray := dmp.DiffLinesToChars(trimmed(original), trimmed(revised))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lineArray)

	count := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			count += strings.Count(d.Text, "\n")
		}
	}
	return count
}

func TestDiffLinesMatchesMinimalDiff(t *testing.T) {
	for _, pair := range propertyCorpus {
		// A threshold of 1 disables modify pairing, so the backtrack follows
		// the table exactly and equal records form a longest common subsequence.
		result := ComputeDiffWithOptions(pair[0], pair[1], Options{SimilarityThreshold: 1})

		equal := 0
		for _, rec := range result.Records {
			if rec.Tag() == TagEqual {
				equal++
			}
		}
		assert.Equal(t, lcsLengthOracle(pair[0], pair[1]), equal, "LCS length for %q", pair)
		assert.Zero(t, result.Stats.Modified, "no modifications for %q", pair)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a"}, SplitLines("a"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n"))
	assert.Equal(t, []string{"", ""}, SplitLines("\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb"))
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "equal", TagEqual.String())
	assert.Equal(t, "delete", TagDelete.String())
	assert.Equal(t, "insert", TagInsert.String())
	assert.Equal(t, "modify", TagModify.String())
	assert.Equal(t, "unknown", Tag(9).String())
}
