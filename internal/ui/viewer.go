package ui

import "gtt/internal/domain"

// Viewer displays a timing report in an interactive TUI
type Viewer interface {
	View(report domain.Report) error
}
