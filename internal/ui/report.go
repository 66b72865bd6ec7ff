package ui

import (
	"fmt"
	"io"
	"strings"

	"gtt/internal/domain"
)

// separatorWidth is the width of the line printed above the report
const separatorWidth = 70

// ReportPrinter writes the console timing report
type ReportPrinter struct {
	out       io.Writer
	colorizer Colorizer
}

// NewReportPrinter creates a ReportPrinter writing to out
func NewReportPrinter(out io.Writer, colorizer Colorizer) *ReportPrinter {
	if colorizer == nil {
		colorizer = plainColorizer{}
	}
	return &ReportPrinter{out: out, colorizer: colorizer}
}

// PrintReport writes the separator line followed by one line per entry
func (p *ReportPrinter) PrintReport(entries []domain.Entry) error {
	if _, err := fmt.Fprintln(p.out, strings.Repeat("-", separatorWidth)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(p.out, p.FormatLine(entry)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// FormatLine formats a single report line:
// [status] percent% test-id: elapsed
func (p *ReportPrinter) FormatLine(entry domain.Entry) string {
	return fmt.Sprintf("[%s] %04.2f%% %s: %s",
		p.colorizer.Status(string(entry.Outcome), entry.Outcome),
		entry.Percent,
		entry.ID,
		p.FormatTime(entry.Seconds, entry.Tier),
	)
}

// FormatTime formats an elapsed time with four decimals and an "s" suffix
func (p *ReportPrinter) FormatTime(seconds float64, tier domain.Tier) string {
	return p.colorizer.Time(fmt.Sprintf("%0.4fs", seconds), tier)
}
