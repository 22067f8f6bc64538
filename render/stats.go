package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prettytext "github.com/jedib0t/go-pretty/v6/text"

	"transcriptdiff/text"
)

// RenderStats writes the change counts as a table, with the size summary as
// a final row when it is not empty.
func RenderStats(w io.Writer, stats text.Stats, summary string) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Change", "Lines"})
	tw.AppendRow(table.Row{"Added", stats.Added})
	tw.AppendRow(table.Row{"Removed", stats.Removed})
	tw.AppendRow(table.Row{"Modified", stats.Modified})
	if summary != "" {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{"Summary", summary})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: prettytext.AlignLeft, AlignHeader: prettytext.AlignLeft},
		{Number: 2, Align: prettytext.AlignRight, AlignHeader: prettytext.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
