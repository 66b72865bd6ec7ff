package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gtt/internal/config"
	"gtt/internal/events"
	"gtt/internal/execution"
	"gtt/internal/lifecycle"
	"gtt/internal/ui"
)

// ExecutorFactory creates the executor for one run. Listeners read time
// from clock, which the executor advances.
type ExecutorFactory func(clock *events.StreamClock, stderr io.Writer) execution.Executor

// RunCommand handles the run command
type RunCommand struct {
	config      *config.Config
	log         *logrus.Logger
	newExecutor ExecutorFactory
}

// NewRunCommand creates a new RunCommand that runs go test
func NewRunCommand(cfg *config.Config, log *logrus.Logger) *RunCommand {
	rc := &RunCommand{
		config: cfg,
		log:    log,
	}
	rc.newExecutor = func(clock *events.StreamClock, stderr io.Writer) execution.Executor {
		runner := execution.NewRunner(rc.config, clock, rc.log)
		runner.SetStderr(stderr)
		return runner
	}
	return rc
}

// SetExecutorFactory replaces how tests are executed
func (rc *RunCommand) SetExecutorFactory(f ExecutorFactory) {
	rc.newExecutor = f
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	packages, testArgs := splitArgs(args, cmd.ArgsLenAtDash())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := &events.StreamClock{}
	var listeners lifecycle.Multi

	if rc.config.Progress && isatty.IsTerminal(os.Stderr.Fd()) {
		listeners = append(listeners, ui.NewProgressTracker(ui.NewProgressBar(os.Stderr)))
	}

	if rc.config.Timer.Enabled {
		reporter, err := newReporter(rc.config, clock, cmd.OutOrStdout(), rc.log)
		if err != nil {
			return err
		}
		listeners = append(listeners, reporter)
	}

	executor := rc.newExecutor(clock, cmd.ErrOrStderr())
	summary, err := executor.Run(ctx, packages, testArgs, listeners)
	printSummary(summary)
	if ctx.Err() != nil {
		color.Yellow("Interrupted")
	}
	return err
}

// splitArgs separates package patterns from arguments after --
func splitArgs(args []string, dash int) (packages, testArgs []string) {
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// printSummary prints a one-line outcome summary
func printSummary(s events.Summary) {
	if s.Total() == 0 && len(s.FailedPackages) == 0 {
		color.Yellow("No tests were run")
		return
	}

	if s.OK() {
		color.Green("✓ %d test(s) passed, %d skipped", s.Passed, s.Skipped)
		return
	}

	color.Red("✗ %d failed, %d errored, %d passed, %d skipped", s.Failed, s.Errored, s.Passed, s.Skipped)
	for _, pkg := range s.FailedPackages {
		color.Red("  FAIL %s", pkg)
	}
}
