package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "not set" from zero values.
type fileConfig struct {
	ProjectPath string `yaml:"project_path"`
	Go          string `yaml:"go"`
	Progress    *bool  `yaml:"progress"`

	Timer struct {
		Enabled    *bool    `yaml:"enabled"`
		OK         *float64 `yaml:"ok"`
		Warning    *float64 `yaml:"warning"`
		Threshold  *float64 `yaml:"threshold"`
		TopN       *int     `yaml:"top_n"`
		Color      *bool    `yaml:"color"`
		TypeFilter string   `yaml:"typefilter"`
		JSONFile   string   `yaml:"json_file"`
	} `yaml:"timer"`

	History struct {
		DSN   string `yaml:"dsn"`
		Table string `yaml:"table"`
	} `yaml:"history"`
}

// Load builds a Config from defaults, the YAML file at path, and the
// environment (including a .env file in the working directory).
// A missing file is an error only when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := New()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ProjectPath != "" {
		c.ProjectPath = fc.ProjectPath
	}
	if fc.Go != "" {
		c.GoBinary = fc.Go
	}
	if fc.Progress != nil {
		c.Progress = *fc.Progress
	}

	t := fc.Timer
	if t.Enabled != nil {
		c.Timer.Enabled = *t.Enabled
	}
	if t.OK != nil {
		c.Timer.OK = *t.OK
	}
	if t.Warning != nil {
		c.Timer.Warning = *t.Warning
	}
	if t.Threshold != nil {
		c.Timer.Threshold = *t.Threshold
	}
	if t.TopN != nil {
		c.Timer.TopN = *t.TopN
	}
	if t.Color != nil {
		c.Timer.Color = *t.Color
	}
	if t.TypeFilter != "" {
		filter, err := ParseTypeFilter(t.TypeFilter)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		c.Timer.TypeFilter = filter
	}
	if t.JSONFile != "" {
		c.Timer.JSONFile = t.JSONFile
	}

	if fc.History.DSN != "" {
		c.History.DSN = fc.History.DSN
	}
	if fc.History.Table != "" {
		c.History.Table = fc.History.Table
	}

	return nil
}
