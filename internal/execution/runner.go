package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"gtt/internal/config"
	"gtt/internal/events"
	"gtt/internal/lifecycle"
)

// TestsFailedError is returned when go test exits with a non-zero status
type TestsFailedError struct {
	ExitCode int
	Summary  events.Summary
}

func (e *TestsFailedError) Error() string {
	if e.Summary.Total() == 0 && len(e.Summary.FailedPackages) > 0 {
		return fmt.Sprintf("go test failed (exit code %d, %d package(s) failed)", e.ExitCode, len(e.Summary.FailedPackages))
	}
	return fmt.Sprintf("go test failed (exit code %d, %d failed, %d errored)", e.ExitCode, e.Summary.Failed, e.Summary.Errored)
}

// Runner executes go test -json and feeds its events to a listener
type Runner struct {
	config *config.Config
	clock  *events.StreamClock
	log    logrus.FieldLogger
	stderr io.Writer
}

// NewRunner creates a new Runner. Listeners that read time should use the
// same clock.
func NewRunner(cfg *config.Config, clock *events.StreamClock, log logrus.FieldLogger) *Runner {
	if clock == nil {
		clock = &events.StreamClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{config: cfg, clock: clock, log: log, stderr: os.Stderr}
}

// SetStderr redirects the child's stderr and any non-event output
func (r *Runner) SetStderr(w io.Writer) {
	r.stderr = w
}

// Command builds the go test command line
func (r *Runner) Command(ctx context.Context, packages []string, args []string) *exec.Cmd {
	if len(packages) == 0 {
		packages = []string{config.DefaultPackage}
	}

	cmdArgs := []string{"test", "-json"}
	cmdArgs = append(cmdArgs, args...)
	cmdArgs = append(cmdArgs, packages...)

	cmd := exec.CommandContext(ctx, r.config.GoBinary, cmdArgs...)
	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectPath
	return cmd
}

// Run executes go test for the packages and dispatches its events
func (r *Runner) Run(ctx context.Context, packages []string, args []string, listener lifecycle.Listener) (events.Summary, error) {
	cmd := r.Command(ctx, packages, args)
	cmd.Stderr = r.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return events.Summary{}, fmt.Errorf("failed to attach to go test output: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"dir":  cmd.Dir,
		"args": cmd.Args,
	}).Debug("Starting go test")

	if err := cmd.Start(); err != nil {
		return events.Summary{}, fmt.Errorf("failed to start %s: %w", r.config.GoBinary, err)
	}

	dispatcher := events.NewDispatcher(listener, r.clock, r.log, r.stderr)
	summary, dispatchErr := dispatcher.Run(stdout)
	if dispatchErr != nil {
		// Drain so the child is not blocked on a full pipe
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	if dispatchErr != nil {
		return summary, dispatchErr
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && ctx.Err() == nil {
			return summary, &TestsFailedError{ExitCode: exitErr.ExitCode(), Summary: summary}
		}
		return summary, fmt.Errorf("go test did not finish: %w", waitErr)
	}
	return summary, nil
}

var _ Executor = (*Runner)(nil)
