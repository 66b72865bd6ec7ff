package cli

import (
	"github.com/spf13/pflag"

	"gtt/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	// Global
	ConfigFile string
	Verbose    bool

	// Run
	GoBinary string
	Dir      string
	Progress bool

	// List
	NameFilter string
	Timings    string

	// Timer
	WithTimer  bool
	TopN       int
	JSONFile   string
	OK         float64
	Warning    float64
	Color      bool
	Threshold  float64
	TypeFilter string
	HistoryDSN string
}

const timeUnitsHelp = "Default time unit is a second, float type is acceptable"

// Option is one enumerated timer option: how it is registered on a flag set
// and how an explicitly set value is applied to the configuration
type Option struct {
	Name     string
	register func(fs *pflag.FlagSet, f *Flags)
	apply    func(cfg *config.Config, f *Flags) error
}

// TimerOptions returns the timer options available on this platform
func TimerOptions() []Option {
	opts := []Option{
		{
			Name: "with-timer",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.BoolVar(&f.WithTimer, "with-timer", true, "Enable the timing report")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.Enabled = f.WithTimer
				return nil
			},
		},
		{
			Name: "timer-top-n",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.IntVar(&f.TopN, "timer-top-n", config.DefaultTimerTopN,
					"Only show the top N tests that consume most of the time. -1 shows all tests")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.TopN = f.TopN
				return nil
			},
		},
		{
			Name: "timer-json-file",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.StringVar(&f.JSONFile, "timer-json-file", "",
					"Save the timing and status of each test in this JSON file")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.JSONFile = f.JSONFile
				return nil
			},
		},
		{
			Name: "timer-ok",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.Float64Var(&f.OK, "timer-ok", config.DefaultTimerOK,
					"Highlight times in green when a test runs at most this long ("+timeUnitsHelp+")")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.OK = f.OK
				return nil
			},
		},
		{
			Name: "timer-warning",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.Float64VarP(&f.Warning, "timer-warning", "W", config.DefaultTimerWarning,
					"Highlight slower tests in yellow up to this time; slower ones are red ("+timeUnitsHelp+")")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.Warning = f.Warning
				return nil
			},
		},
		{
			Name: "timer-threshold",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.Float64Var(&f.Threshold, "timer-threshold", 0,
					"Only show tests that take at least this long ("+timeUnitsHelp+")")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.Threshold = f.Threshold
				return nil
			},
		},
		{
			Name: "timer-typefilter",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.StringVar(&f.TypeFilter, "timer-typefilter", "",
					"Only show tests with these outcomes (passed, failed, error, skipped), comma separated")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				filter, err := config.ParseTypeFilter(f.TypeFilter)
				if err != nil {
					return &config.Error{Option: "timer-typefilter", Reason: err.Error()}
				}
				cfg.Timer.TypeFilter = filter
				return nil
			},
		},
		{
			Name: "timer-history-dsn",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.StringVar(&f.HistoryDSN, "timer-history-dsn", "",
					"Append timings to a MySQL database (e.g. user:pass@tcp(127.0.0.1:3306)/ci)")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.History.DSN = f.HistoryDSN
				return nil
			},
		},
	}

	// Windows consoles do not support colors
	if config.ColorSupported() {
		opts = append(opts, Option{
			Name: "timer-color",
			register: func(fs *pflag.FlagSet, f *Flags) {
				fs.BoolVar(&f.Color, "timer-color", false, "Colorize output (useful for non-tty output)")
			},
			apply: func(cfg *config.Config, f *Flags) error {
				cfg.Timer.Color = f.Color
				return nil
			},
		})
	}

	return opts
}

// RegisterTimerFlags registers every timer option on fs
func RegisterTimerFlags(fs *pflag.FlagSet, f *Flags) {
	for _, opt := range TimerOptions() {
		opt.register(fs, f)
	}
}

// ApplyTimerFlags copies the timer options that were set on the command
// line into cfg, leaving file and environment values for the others
func ApplyTimerFlags(fs *pflag.FlagSet, f *Flags, cfg *config.Config) error {
	for _, opt := range TimerOptions() {
		if !fs.Changed(opt.Name) {
			continue
		}
		if err := opt.apply(cfg, f); err != nil {
			return err
		}
	}
	return nil
}
