package render

import (
	"io"

	"transcriptdiff/text"
)

func (r *Renderer) unifiedPrefix(marker string, orig, rev text.Line, hasOrig, hasRev bool, numWidth int) string {
	nums := lineNumber(orig, hasOrig, numWidth) + " " + lineNumber(rev, hasRev, numWidth) + " |"
	switch marker {
	case "-":
		marker = r.deleted.Sprint(marker)
	case "+":
		marker = r.inserted.Sprint(marker)
	}
	return marker + " " + r.gutter.Sprint(nums)
}

// renderUnified writes one column. A modified line is shown as a - row with
// its deleted words highlighted followed by a + row with its inserted words.
func (r *Renderer) renderUnified(w io.Writer, records []text.Record, numWidth int) error {
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
			err = writeRow(w, r.unifiedPrefix("-", rec.Original, text.Line{}, true, false, numWidth),
				joinSegments(sideSegments(rec.Runs, text.OpDelete, r.deletedWord)))
			if err == nil {
				err = writeRow(w, r.unifiedPrefix("+", text.Line{}, rec.Revised, false, true, numWidth),
					joinSegments(sideSegments(rec.Runs, text.OpInsert, r.insertedWord)))
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
