package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ndhoang91/vtt-transcripts/internal/builder"
)

// renderResults formats the per-video batch outcome as a table.
func renderResults(results []builder.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"VIDEO ID", "FILES", "CUES", "PARAGRAPHS", "STATUS"})

	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		tw.AppendRow(table.Row{
			r.VideoID,
			strconv.Itoa(r.SegmentFiles),
			strconv.Itoa(r.Cues),
			strconv.Itoa(r.Paragraphs),
			status,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	return tw.Render()
}
