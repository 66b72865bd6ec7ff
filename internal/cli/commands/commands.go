package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gtt/internal/cli"
	"gtt/internal/config"
	"gtt/internal/discovery"
	"gtt/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	Report *ReportCommand
	Show   *ShowCommand
	View   *ViewCommand
	List   *ListCommand

	config *config.Config
	log    *logrus.Logger
}

// NewCommands creates all commands with dependencies. cfg and log are
// filled in before any command runs.
func NewCommands(cfg *config.Config, log *logrus.Logger) *Commands {
	viewer := ui.NewReportViewer()

	return &Commands{
		Run:    NewRunCommand(cfg, log),
		Report: NewReportCommand(cfg, log),
		Show:   NewShowCommand(cfg),
		View:   NewViewCommand(cfg, viewer),
		List:   NewListCommand(cfg, discovery.NewFilter()),
		config: cfg,
		log:    log,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Config file (default "+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.load(flags)
	}

	// applyTimer resolves timer flags on top of file and environment values
	applyTimer := func(cmd *cobra.Command, args []string) error {
		if err := cli.ApplyTimerFlags(cmd.Flags(), flags, c.config); err != nil {
			return err
		}
		return c.config.Validate()
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [packages] [-- go test flags]",
		Short: "Run go tests and report per-test timings",
		Long:  "Run go test -json for the given packages (default ./...) and report how long every test took.\nArguments after -- are passed to go test, e.g. gtt run ./... -- -run TestAPI -count=1",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("go") {
				c.config.GoBinary = flags.GoBinary
			}
			if cmd.Flags().Changed("dir") {
				c.config.ProjectPath = flags.Dir
			}
			if cmd.Flags().Changed("progress") {
				c.config.Progress = flags.Progress
			}
			return applyTimer(cmd, args)
		},
	}
	runCmd.Flags().StringVar(&flags.GoBinary, "go", config.DefaultGoBinary, "Go command used to run tests")
	runCmd.Flags().StringVarP(&flags.Dir, "dir", "d", config.DefaultProjectPath, "Directory to run go test in")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", true, "Show a progress spinner while tests run")
	cli.RegisterTimerFlags(runCmd.Flags(), flags)
	rootCmd.AddCommand(runCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report [file]",
		Short:   "Report timings from a saved go test -json stream",
		Long:    "Read go test -json output from a file, or stdin when no file or - is given, and report per-test timings",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Report.Execute,
		PreRunE: applyTimer,
	}
	cli.RegisterTimerFlags(reportCmd.Flags(), flags)
	rootCmd.AddCommand(reportCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:     "show [timings.json]",
		Short:   "Print a saved timing report as a table",
		Long:    "Load a JSON timing report written with --timer-json-file and print it as a table",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Show.Execute,
		PreRunE: applyTimer,
	}
	cli.RegisterTimerFlags(showCmd.Flags(), flags)
	rootCmd.AddCommand(showCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view [timings.json]",
		Short:   "Browse a saved timing report interactively",
		Long:    "Display a JSON timing report written with --timer-json-file in an interactive viewer",
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.View.Execute,
		PreRunE: applyTimer,
	}
	viewCmd.Flags().Float64Var(&flags.OK, "timer-ok", config.DefaultTimerOK, "Green threshold in seconds")
	viewCmd.Flags().Float64VarP(&flags.Warning, "timer-warning", "W", config.DefaultTimerWarning, "Yellow threshold in seconds")
	rootCmd.AddCommand(viewCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List test functions found in the project",
		Long:  "Scan *_test.go files under a directory (default --dir or .) and list every top-level test by the id timing reports use",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List.Execute(cmd, args, flags.NameFilter, flags.Timings)
		},
		PreRunE: applyTimer,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only list tests whose name matches this pattern (supports * and ?)")
	listCmd.Flags().StringVar(&flags.Timings, "timings", "", "Show times from a saved JSON timing report")
	rootCmd.AddCommand(listCmd)
}

// load reads the config file and environment and sets up logging
func (c *Commands) load(flags *cli.Flags) error {
	cli.ConfigureLogger(c.log, flags.Verbose)

	path, required := flags.ConfigFile, true
	if path == "" {
		path, required = config.DefaultConfigFile, false
	}

	loaded, err := config.Load(path, required)
	if err != nil {
		return err
	}
	*c.config = *loaded

	c.log.WithField("config", path).Debug("Configuration loaded")
	return nil
}
