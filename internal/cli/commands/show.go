package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"gtt/internal/config"
	"gtt/internal/domain"
	"gtt/internal/storage"
	"gtt/internal/timer"
	"gtt/internal/ui"
)

// errNoTimingsFile is returned when neither an argument nor the config names a report file
var errNoTimingsFile = errors.New("no timings file given (pass a path or set --timer-json-file)")

// ShowCommand handles the show command
type ShowCommand struct {
	config *config.Config
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config) *ShowCommand {
	return &ShowCommand{config: cfg}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := loadReport(sc.config, args)
	if err != nil {
		return err
	}

	selected := domain.Report{
		Entries:      timer.Select(*report, sc.config.Timer),
		TotalSeconds: report.TotalSeconds,
	}
	ui.PrintReportTable(cmd.OutOrStdout(), selected, ui.NewColorizer(sc.config.Timer.Color))
	return nil
}

// loadReport reads the report named by args[0] or by the configured JSON file
func loadReport(cfg *config.Config, args []string) (*domain.Report, error) {
	var st *storage.JSONStorage
	switch {
	case len(args) == 1:
		st = storage.NewJSONFile(args[0])
	case cfg.Timer.JSONFile != "":
		st = storage.NewJSONStorage(cfg)
	default:
		return nil, errNoTimingsFile
	}
	return st.LoadWith(cfg.Timer)
}
