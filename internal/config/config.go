package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"gtt/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	GoBinary    string

	// Output settings
	Progress bool
	Verbose  bool

	// Timing report settings
	Timer Timer

	// Timing history settings
	History History
}

// Timer is the run configuration of the timing reporter.
// It is resolved before the run begins and not changed afterwards.
type Timer struct {
	Enabled    bool
	OK         float64 // Seconds; at or below is green
	Warning    float64 // Seconds; at or below is yellow, above is red
	Threshold  float64 // Seconds; 0 disables the filter
	TopN       int     // -1 shows all tests
	Color      bool
	TypeFilter []domain.Outcome // Empty shows all outcomes
	JSONFile   string           // Empty disables the JSON report file
}

// History configures the optional MySQL timing history
type History struct {
	DSN   string
	Table string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		GoBinary:    DefaultGoBinary,
		Progress:    true,
		Timer: Timer{
			Enabled: true,
			OK:      DefaultTimerOK,
			Warning: DefaultTimerWarning,
			TopN:    DefaultTimerTopN,
		},
		History: History{
			Table: DefaultHistoryTable,
		},
	}
}

// ColorSupported reports whether colored timer output can be enabled on this
// platform. Windows consoles are excluded.
func ColorSupported() bool {
	return runtime.GOOS != "windows"
}

// ParseTypeFilter parses a comma separated list of outcome names
func ParseTypeFilter(value string) ([]domain.Outcome, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var filter []domain.Outcome
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		outcome, err := domain.ParseOutcome(part)
		if err != nil {
			return nil, err
		}
		filter = append(filter, outcome)
	}
	return filter, nil
}

// Validate checks the configuration for values that cannot produce a report
func (c *Config) Validate() error {
	t := c.Timer
	if t.OK < 0 {
		return &Error{Option: "timer-ok", Reason: fmt.Sprintf("must not be negative, got %g", t.OK)}
	}
	if t.Warning < 0 {
		return &Error{Option: "timer-warning", Reason: fmt.Sprintf("must not be negative, got %g", t.Warning)}
	}
	if t.Threshold < 0 {
		return &Error{Option: "timer-threshold", Reason: fmt.Sprintf("must not be negative, got %g", t.Threshold)}
	}
	if t.TopN < -1 {
		return &Error{Option: "timer-top-n", Reason: fmt.Sprintf("must be -1 or greater, got %d", t.TopN)}
	}
	if t.Color && !ColorSupported() {
		return &Error{Option: "timer-color", Reason: "colored output is not supported on " + runtime.GOOS}
	}
	return nil
}

// GetJSONPath returns the absolute path of the JSON report file, or "" if disabled
func (c *Config) GetJSONPath() string {
	if c.Timer.JSONFile == "" {
		return ""
	}
	p := c.Timer.JSONFile
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// HistoryEnabled reports whether timing history should be recorded
func (c *Config) HistoryEnabled() bool {
	return c.History.DSN != ""
}

// Error is a configuration error for a single option
type Error struct {
	Option string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Reason)
}
