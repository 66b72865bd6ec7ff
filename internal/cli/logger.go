package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logger writing to stderr. The level comes from
// LOG_LEVEL; verbose forces debug.
func NewLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	ConfigureLogger(log, verbose)
	return log
}

// ConfigureLogger applies the output, format and level settings to log
func ConfigureLogger(log *logrus.Logger, verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // Default to info
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}
