package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"transcriptdiff/text"
)

// Layout selects how records are laid out
type Layout string

const (
	LayoutUnified Layout = "unified" // one column, -/+ rows for each side
	LayoutSplit   Layout = "split"   // original left, revised right
	LayoutInline  Layout = "inline"  // one column, word changes marked in place
)

// tabWidth is the number of spaces a tab expands to in fixed-width cells
const tabWidth = 4

// Options configures a Renderer
type Options struct {
	Layout      Layout
	ChangesOnly bool
	Color       bool
	Width       int // total width for the split layout
}

// Renderer writes a diff result as text for a terminal.
type Renderer struct {
	opts Options
	cond *runewidth.Condition

	deleted      *color.Color
	inserted     *color.Color
	deletedWord  *color.Color
	insertedWord *color.Color
	gutter       *color.Color
}

// New creates a Renderer. Colors are enabled only when opts.Color is set.
func New(opts Options) *Renderer {
	if opts.Layout == "" {
		opts.Layout = LayoutUnified
	}

	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	r := &Renderer{
		opts:         opts,
		cond:         cond,
		deleted:      color.New(color.FgRed),
		inserted:     color.New(color.FgGreen),
		deletedWord:  color.New(color.FgRed, color.Bold, color.Underline),
		insertedWord: color.New(color.FgGreen, color.Bold, color.Underline),
		gutter:       color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.deleted, r.inserted, r.deletedWord, r.insertedWord, r.gutter} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the records of result in the configured layout.
func (r *Renderer) Render(w io.Writer, result *text.Result) error {
	records := result.Records
	if r.opts.ChangesOnly {
		records = result.Changes()
		if len(records) == 0 {
			_, err := fmt.Fprintln(w, "No changes.")
			return err
		}
	}

	numWidth := len(strconv.Itoa(maxLineNumber(result.Records)))

	switch r.opts.Layout {
	case LayoutSplit:
		return r.renderSplit(w, records, numWidth)
	case LayoutInline:
		return r.renderInline(w, records, numWidth)
	case LayoutUnified:
		return r.renderUnified(w, records, numWidth)
	default:
		return fmt.Errorf("unknown layout %q", r.opts.Layout)
	}
}

// maxLineNumber returns the largest 1-based line number on either side
func maxLineNumber(records []text.Record) int {
	n := 0
	for _, rec := range records {
		if line, ok := text.OriginalSide(rec); ok {
			n = max(n, line.Index+1)
		}
		if line, ok := text.RevisedSide(rec); ok {
			n = max(n, line.Index+1)
		}
	}
	return n
}

// lineNumber formats a 1-based line number right-aligned to width
func lineNumber(line text.Line, ok bool, width int) string {
	if !ok {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, line.Index+1)
}

// segment is a piece of line text drawn in one style; nil style is plain
type segment struct {
	text  string
	style *color.Color
}

func (s segment) String() string {
	if s.style == nil {
		return s.text
	}
	return s.style.Sprint(s.text)
}

// sideSegments returns the segments of one side of a modify record: equal
// runs plain and the side's own changed runs in style.
func sideSegments(runs []text.Run, keep text.Op, style *color.Color) []segment {
	var segs []segment
	for _, run := range runs {
		switch run.Op {
		case text.OpEqual:
			segs = append(segs, segment{text: run.Text()})
		case keep:
			segs = append(segs, segment{text: run.Text(), style: style})
		}
	}
	return segs
}

func joinSegments(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.String())
	}
	return b.String()
}

// writeRow writes prefix and body as one line, dropping the space after the
// prefix when the body is empty.
func writeRow(w io.Writer, prefix, body string) error {
	if body == "" {
		_, err := fmt.Fprintln(w, prefix)
		return err
	}
	_, err := fmt.Fprintln(w, prefix+" "+body)
	return err
}
