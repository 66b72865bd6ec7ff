package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gtt/internal/cli"
	"gtt/internal/cli/commands"
	"gtt/internal/config"
	"gtt/internal/execution"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "gtt",
		Short:         "Per-test timing reporter for go test",
		Long:          `Runs go test -json (or replays its saved output), measures how long every test took and reports the slowest ones, classified by configurable thresholds.`,
		Version:       version,
		SilenceErrors: true,
	}

	// Create initial config with defaults, replaced by file and env values before a command runs
	cfg := config.New()
	log := logrus.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create and register commands with dependencies
	commands.NewCommands(cfg, log).Register(rootCmd, &flags)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var failed *execution.TestsFailedError
		if errors.As(err, &failed) {
			os.Exit(failed.ExitCode)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
