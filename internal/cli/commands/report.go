package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gtt/internal/config"
	"gtt/internal/events"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config *config.Config
	log    *logrus.Logger
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, log *logrus.Logger) *ReportCommand {
	return &ReportCommand{
		config: cfg,
		log:    log,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if !rc.config.Timer.Enabled {
		color.Yellow("Timer is disabled, nothing to report")
		return nil
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open test output: %w", err)
		}
		defer f.Close()
		in = f
	}

	_, err := rc.Replay(in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return err
}

// Replay reads a test2json stream from in and writes the report to out.
// Lines that are not events go to passthru.
func (rc *ReportCommand) Replay(in io.Reader, out, passthru io.Writer) (events.Summary, error) {
	clock := &events.StreamClock{}
	reporter, err := newReporter(rc.config, clock, out, rc.log)
	if err != nil {
		return events.Summary{}, err
	}

	dispatcher := events.NewDispatcher(reporter, clock, rc.log, passthru)
	return dispatcher.Run(in)
}
