package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"transcriptdiff/text"
)

const (
	splitSeparator = " | "
	truncationTail = "…"
)

// splitCellWidth returns the text width of each column: the total width
// minus the separator and, per side, the line number, marker and spaces.
func splitCellWidth(total, numWidth int) int {
	return max((total-len(splitSeparator))/2-numWidth-3, 1)
}

// fit lays segments into width display columns, truncating with a tail
// when they overflow. When pad is set the result is right-padded to width.
func (r *Renderer) fit(segs []segment, width int, pad bool) string {
	var b strings.Builder
	used := 0
	for _, seg := range segs {
		s := strings.ReplaceAll(seg.text, "\t", strings.Repeat(" ", tabWidth))
		sw := r.cond.StringWidth(s)
		if used+sw > width {
			if width-used <= 0 {
				break
			}
			s = r.cond.Truncate(s, width-used, truncationTail)
			b.WriteString(segment{text: s, style: seg.style}.String())
			used += r.cond.StringWidth(s)
			break
		}
		b.WriteString(segment{text: s, style: seg.style}.String())
		used += sw
	}
	if pad && used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

// splitCell formats one column: line number, marker, then fitted text.
func (r *Renderer) splitCell(line text.Line, marker string, markerStyle *color.Color, segs []segment, numWidth, cellWidth int, pad bool) string {
	return r.gutter.Sprint(lineNumber(line, true, numWidth)) + " " + markerStyle.Sprint(marker) + " " + r.fit(segs, cellWidth, pad)
}

// renderSplit writes two columns, original on the left and revised on the
// right, each truncated to fit the configured width.
func (r *Renderer) renderSplit(w io.Writer, records []text.Record, numWidth int) error {
	cellWidth := splitCellWidth(r.opts.Width, numWidth)
	blank := strings.Repeat(" ", numWidth+3+cellWidth)
	plain := color.New(color.Reset)
	plain.DisableColor()

	for _, rec := range records {
		var left, right string
		switch rec := rec.(type) {
		case text.EqualRecord:
			left = r.splitCell(rec.Original, " ", plain, []segment{{text: rec.Original.Text}}, numWidth, cellWidth, true)
			right = r.splitCell(rec.Revised, " ", plain, []segment{{text: rec.Revised.Text}}, numWidth, cellWidth, false)
		case text.DeleteRecord:
			left = r.splitCell(rec.Original, "-", r.deleted, []segment{{text: rec.Original.Text, style: r.deleted}}, numWidth, cellWidth, true)
		case text.InsertRecord:
			left = blank
			right = r.splitCell(rec.Revised, "+", r.inserted, []segment{{text: rec.Revised.Text, style: r.inserted}}, numWidth, cellWidth, false)
		case text.ModifyRecord:
			left = r.splitCell(rec.Original, "~", r.deleted, sideSegments(rec.Runs, text.OpDelete, r.deletedWord), numWidth, cellWidth, true)
			right = r.splitCell(rec.Revised, "~", r.inserted, sideSegments(rec.Runs, text.OpInsert, r.insertedWord), numWidth, cellWidth, false)
		}

		row := left + splitSeparator + right
		if right == "" {
			row = left + strings.TrimRight(splitSeparator, " ")
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
