package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gtt/internal/domain"
)

// PrintReportTable renders a saved report as a table
func PrintReportTable(out io.Writer, report domain.Report, colorizer Colorizer) {
	if colorizer == nil {
		colorizer = plainColorizer{}
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("Test Timings (%d tests, %.4fs total)", len(report.Entries), report.TotalSeconds))
	t.AppendHeader(table.Row{"#", "Test", "Status", "Time", "Share"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Test", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Time", Align: text.AlignRight},
		{Name: "Share", Align: text.AlignRight},
	})

	for i, entry := range report.Entries {
		t.AppendRow(table.Row{
			i + 1,
			entry.ID,
			colorizer.Status(string(entry.Outcome), entry.Outcome),
			colorizer.Time(fmt.Sprintf("%0.4fs", entry.Seconds), entry.Tier),
			fmt.Sprintf("%.2f%%", entry.Percent),
		})
	}

	t.AppendFooter(table.Row{"", "Total", "", fmt.Sprintf("%0.4fs", report.TotalSeconds), ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
