package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtt/internal/domain"
)

// ReportViewer browses a timing report, slowest tests first
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// View displays the report in an interactive TUI
func (rv *ReportViewer) View(report domain.Report) error {
	if len(report.Entries) == 0 {
		color.Yellow("No test timings found")
		return nil
	}

	app := tview.NewApplication()

	// Indexes into report.Entries of the rows currently listed
	visible := visibleEntries(report.Entries, false)
	failuresOnly := false

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		scope := "all"
		if failuresOnly {
			scope = "failures"
		}
		headerView.SetText(fmt.Sprintf(" Test Timings (%d shown of %d, %s) | ↑↓ navigate, [yellow]F[white] toggle failures, → details, ← back, Q/Ctrl+C exit ", len(visible), len(report.Entries), scope))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			statsView.SetText("")
			detailsView.SetText("[gray]Nothing to show[white]")
			return
		}
		rank := visible[index]
		entry := report.Entries[rank]
		statsView.SetText(formatEntryStats(entry, rank+1))
		detailsView.SetText(formatEntryDetails(entry, rank+1, report))
	}

	fillList := func() {
		list.Clear()
		for _, rank := range visible {
			list.AddItem(listItemText(report.Entries[rank], rank+1), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'f', 'F':
				failuresOnly = !failuresOnly
				visible = visibleEntries(report.Entries, failuresOnly)
				fillList()
				return nil
			case 'q', 'Q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	fillList()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// visibleEntries returns the indexes of the entries to list
func visibleEntries(entries []domain.Entry, failuresOnly bool) []int {
	visible := make([]int, 0, len(entries))
	for i, entry := range entries {
		if failuresOnly && !entry.Outcome.IsFailure() {
			continue
		}
		visible = append(visible, i)
	}
	return visible
}

// tierTag maps a tier to a tview color tag
func tierTag(tier domain.Tier) string {
	switch tier {
	case domain.TierGreen:
		return "[green]"
	case domain.TierYellow:
		return "[yellow]"
	default:
		return "[red]"
	}
}

func statusTag(outcome domain.Outcome) string {
	if outcome.IsFailure() {
		return "[red]"
	}
	return "[green]"
}

func listItemText(entry domain.Entry, rank int) string {
	return fmt.Sprintf("%s%d.[white] %s %s%.2fs[white]", statusTag(entry.Outcome), rank, tview.Escape(entry.ID), tierTag(entry.Tier), entry.Seconds)
}

// formatEntryStats formats the header line for an entry
func formatEntryStats(entry domain.Entry, rank int) string {
	return fmt.Sprintf("[cyan]#%d:[white] [yellow]%s[white]\n", rank, tview.Escape(entry.ID))
}

// formatEntryDetails formats an entry for display using tview color tags
func formatEntryDetails(entry domain.Entry, rank int, report domain.Report) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%sStatus:\t%s[white]\n", statusTag(entry.Outcome), entry.Outcome)
	fmt.Fprintf(w, "%sTime:\t%0.4fs (%s)[white]\n", tierTag(entry.Tier), entry.Seconds, entry.Tier)
	fmt.Fprintf(w, "[cyan]Share:\t%.2f%% of %0.4fs[white]\n", entry.Percent, report.TotalSeconds)
	fmt.Fprintf(w, "[cyan]Rank:\t%d of %d[white]\n", rank, len(report.Entries))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s%s[white]\n", tierTag(entry.Tier), shareBar(entry.Percent, 40))

	w.Flush()
	return builder.String()
}

// shareBar draws percent as a bar of the given width
func shareBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	if filled == 0 && percent > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
