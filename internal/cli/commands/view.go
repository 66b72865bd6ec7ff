package commands

import (
	"github.com/spf13/cobra"

	"gtt/internal/config"
	"gtt/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := loadReport(vc.config, args)
	if err != nil {
		return err
	}

	return vc.viewer.View(*report)
}
