package ui

import (
	"bytes"
	"strings"
	"testing"

	"gtt/internal/domain"
)

func TestPrintReportTable(t *testing.T) {
	report := domain.Report{
		Entries: []domain.Entry{
			{ID: "pkg.TestSlow", Seconds: 3, Outcome: domain.OutcomeFailed, Percent: 75},
			{ID: "pkg.TestFast", Seconds: 1, Outcome: domain.OutcomePassed, Percent: 25},
		},
		TotalSeconds: 4,
	}

	var buf bytes.Buffer
	PrintReportTable(&buf, report, NewColorizer(false))
	out := buf.String()

	for _, want := range []string{"Test Timings (2 tests, 4.0000s total)", "pkg.TestSlow", "failed", "3.0000s", "75.00%", "pkg.TestFast", "25.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "pkg.TestSlow") > strings.Index(out, "pkg.TestFast") {
		t.Error("expected slowest test first")
	}
}
