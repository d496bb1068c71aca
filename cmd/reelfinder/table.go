package main

import (
	"reelfinder/movie"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderResults(items []movie.Movie) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "IMDb ID", "Title", "Year", "Type"})
	for i, it := range items {
		tw.AppendRow(table.Row{i + 1, it.ID, it.Title, it.Year, it.Kind.Label()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, WidthMax: 60},
	})
	return tw.Render()
}
