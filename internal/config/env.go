package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ApplyEnv overrides the configuration with GTT_* environment variables.
// A .env file in the working directory is loaded first if it exists.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error loading .env file: %w", err)
		}
	}

	if v := os.Getenv(EnvGoBinary); v != "" {
		c.GoBinary = v
	}

	if err := envBool(EnvTimerEnabled, &c.Timer.Enabled); err != nil {
		return err
	}
	if err := envFloat(EnvTimerOK, &c.Timer.OK); err != nil {
		return err
	}
	if err := envFloat(EnvTimerWarning, &c.Timer.Warning); err != nil {
		return err
	}
	if err := envFloat(EnvTimerThreshold, &c.Timer.Threshold); err != nil {
		return err
	}
	if err := envInt(EnvTimerTopN, &c.Timer.TopN); err != nil {
		return err
	}
	if err := envBool(EnvTimerColor, &c.Timer.Color); err != nil {
		return err
	}

	if v := os.Getenv(EnvTimerTypeFilter); v != "" {
		filter, err := ParseTypeFilter(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimerTypeFilter, err)
		}
		c.Timer.TypeFilter = filter
	}
	if v := os.Getenv(EnvTimerJSONFile); v != "" {
		c.Timer.JSONFile = v
	}
	if v := os.Getenv(EnvHistoryDSN); v != "" {
		c.History.DSN = v
	}
	if v := os.Getenv(EnvHistoryTable); v != "" {
		c.History.Table = v
	}

	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = f
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}
