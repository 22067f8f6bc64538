package text

import "strings"

// DiffLines aligns two line sequences by LCS over trimmed line equality.
// Where lines diverge, a related original/revised pair becomes a
// ModifyRecord carrying its word diff; otherwise lines become separate
// InsertRecord and DeleteRecord entries. Records are never merged: every
// line index of either side appears in exactly one record.
func DiffLines(original, revised []string, threshold float64) []Record {
	trimmedOrig := make([]string, len(original))
	for i, line := range original {
		trimmedOrig[i] = strings.TrimSpace(line)
	}
	trimmedRev := make([]string, len(revised))
	for j, line := range revised {
		trimmedRev[j] = strings.TrimSpace(line)
	}

	table := buildTable(len(original), len(revised), func(i, j int) bool {
		return trimmedOrig[i] == trimmedRev[j]
	})

	records := make([]Record, 0, max(len(original), len(revised)))

	i, j := len(original), len(revised)
	for i > 0 || j > 0 {
		originalLeft := i > 0
		revisedPreferred := table.prefersRevised(i, j)
		matched := i > 0 && j > 0 && trimmedOrig[i-1] == trimmedRev[j-1]
		related := false
		if !matched && revisedPreferred && originalLeft {
			related = IsRelated(original[i-1], revised[j-1], threshold)
		}

		switch LineStep(revisedPreferred, originalLeft, matched, related) {
		case StepMatch:
			records = append(records, EqualRecord{
				Original: Line{Index: i - 1, Text: original[i-1]},
				Revised:  Line{Index: j - 1, Text: revised[j-1]},
			})
			i--
			j--
		case StepModify:
			records = append(records, ModifyRecord{
				Original: Line{Index: i - 1, Text: original[i-1]},
				Revised:  Line{Index: j - 1, Text: revised[j-1]},
				Runs:     DiffLineWords(original[i-1], revised[j-1]),
			})
			i--
			j--
		case StepInsert:
			records = append(records, InsertRecord{
				Revised: Line{Index: j - 1, Text: revised[j-1]},
			})
			j--
		default:
			records = append(records, DeleteRecord{
				Original: Line{Index: i - 1, Text: original[i-1]},
			})
			i--
		}
	}

	for l, r := 0, len(records)-1; l < r; l, r = l+1, r-1 {
		records[l], records[r] = records[r], records[l]
	}
	return records
}
