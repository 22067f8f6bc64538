package render

import (
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"transcriptdiff/text"
)

// toDiffs converts word runs to diffmatchpatch diffs
func toDiffs(runs []text.Run) []diffmatchpatch.Diff {
	diffs := make([]diffmatchpatch.Diff, len(runs))
	for i, run := range runs {
		op := diffmatchpatch.DiffEqual
		switch run.Op {
		case text.OpDelete:
			op = diffmatchpatch.DiffDelete
		case text.OpInsert:
			op = diffmatchpatch.DiffInsert
		}
		diffs[i] = diffmatchpatch.Diff{Type: op, Text: run.Text()}
	}
	return diffs
}

// inlineText renders both sides of a modified line in one string. With color
// it uses ANSI red/green; without, deletions are wrapped in [-...-] and
// insertions in {+...+}.
func (r *Renderer) inlineText(runs []text.Run) string {
	diffs := toDiffs(runs)
	if r.opts.Color {
		return diffmatchpatch.New().DiffPrettyText(diffs)
	}

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// renderInline writes one column with one row per record; a modified line
// is a single ~ row.
func (r *Renderer) renderInline(w io.Writer, records []text.Record, numWidth int) error {
	for _, rec := range records {
		var err error
		switch rec := rec.(type) {
		case text.EqualRecord:
			err = writeRow(w, r.unifiedPrefix(" ", rec.Original, rec.Revised, true, true, numWidth), rec.Original.Text)
		case text.DeleteRecord:
			err = writeRow(w, r.unifiedPrefix("-", rec.Original, text.Line{}, true, false, numWidth), r.deleted.Sprint(rec.Original.Text))
		case text.InsertRecord:
			err = writeRow(w, r.unifiedPrefix("+", text.Line{}, rec.Revised, false, true, numWidth), r.inserted.Sprint(rec.Revised.Text))
		case text.ModifyRecord:
			err = writeRow(w, r.unifiedPrefix("~", rec.Original, rec.Revised, true, true, numWidth), r.inlineText(rec.Runs))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
