package config

const (
	// DefaultProjectPath is the directory go test runs in
	DefaultProjectPath = "."
	// DefaultGoBinary is the go command used to run tests
	DefaultGoBinary = "go"
	// DefaultPackage is the package pattern tested when none is given
	DefaultPackage = "./..."
	// DefaultConfigFile is read when present and no --config is given
	DefaultConfigFile = ".gtt.yaml"

	// DefaultTimerOK is the green threshold in seconds
	DefaultTimerOK = 5.0
	// DefaultTimerWarning is the yellow threshold in seconds
	DefaultTimerWarning = 10.0
	// DefaultTimerTopN shows all tests
	DefaultTimerTopN = -1

	// DefaultHistoryTable is the MySQL table timing history is written to
	DefaultHistoryTable = "gtt_test_timings"
)

// Environment variables read on top of the config file
const (
	EnvTimerEnabled    = "GTT_WITH_TIMER"
	EnvTimerOK         = "GTT_TIMER_OK"
	EnvTimerWarning    = "GTT_TIMER_WARNING"
	EnvTimerThreshold  = "GTT_TIMER_THRESHOLD"
	EnvTimerTopN       = "GTT_TIMER_TOP_N"
	EnvTimerColor      = "GTT_TIMER_COLOR"
	EnvTimerTypeFilter = "GTT_TIMER_TYPEFILTER"
	EnvTimerJSONFile   = "GTT_TIMER_JSON_FILE"
	EnvHistoryDSN      = "GTT_HISTORY_DSN"
	EnvHistoryTable    = "GTT_HISTORY_TABLE"
	EnvGoBinary        = "GTT_GO"
)
