package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtt/internal/config"
	"gtt/internal/discovery"
	"gtt/internal/storage"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	filter *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config: cfg,
		filter: filter,
	}
}

// Execute runs the command. nameFilter narrows the tests by name; timings,
// when set, names a saved report whose times are shown next to each test.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string, nameFilter, timings string) error {
	root := lc.config.ProjectPath
	if len(args) == 1 {
		root = args[0]
	}

	tests, err := discovery.Discover(root, discovery.DefaultSkipDirs)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(tests))
	for _, test := range tests {
		ids = append(ids, test.ID())
	}
	ids = lc.filter.FilterByName(ids, nameFilter)

	if len(ids) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	seconds := map[string]float64{}
	if timings != "" {
		report, err := storage.NewJSONFile(timings).LoadWith(lc.config.Timer)
		if err != nil {
			return err
		}
		for _, entry := range report.Entries {
			seconds[entry.ID] = entry.Seconds
		}
	}

	out := cmd.OutOrStdout()
	untimed := 0
	for _, id := range ids {
		if timings == "" {
			fmt.Fprintln(out, id)
			continue
		}
		if s, ok := seconds[id]; ok {
			fmt.Fprintf(out, "%s: %0.4fs\n", id, s)
			continue
		}
		untimed++
		fmt.Fprintf(out, "%s: -\n", id)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d test(s) found", len(ids))
	if timings != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), ", %d without timings", untimed)
	}
	fmt.Fprintln(cmd.ErrOrStderr())
	return nil
}
