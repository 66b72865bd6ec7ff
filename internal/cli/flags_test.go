package cli

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"gtt/internal/config"
	"gtt/internal/domain"
)

func parse(t *testing.T, args ...string) (*pflag.FlagSet, *Flags, error) {
	t.Helper()
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterTimerFlags(fs, &flags)
	return fs, &flags, fs.Parse(args)
}

func TestTimerOptions_Names(t *testing.T) {
	names := make(map[string]bool)
	for _, opt := range TimerOptions() {
		if names[opt.Name] {
			t.Errorf("duplicate option %s", opt.Name)
		}
		names[opt.Name] = true
	}

	for _, want := range []string{"with-timer", "timer-top-n", "timer-json-file", "timer-ok", "timer-warning", "timer-threshold", "timer-typefilter", "timer-history-dsn"} {
		if !names[want] {
			t.Errorf("expected option %s", want)
		}
	}
	if names["timer-color"] != config.ColorSupported() {
		t.Errorf("timer-color registered=%v, color supported=%v", names["timer-color"], config.ColorSupported())
	}
}

func TestApplyTimerFlags(t *testing.T) {
	fs, flags, err := parse(t,
		"--timer-top-n", "5",
		"--timer-ok", "0.5",
		"-W", "2.5",
		"--timer-threshold=0.1",
		"--timer-typefilter", "failed,error",
		"--timer-json-file", "out.json",
	)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	cfg := config.New()
	cfg.Timer.Color = true // from a config file; not overridden
	if err := ApplyTimerFlags(fs, flags, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Timer.TopN != 5 {
		t.Errorf("expected top-n 5, got %d", cfg.Timer.TopN)
	}
	if cfg.Timer.OK != 0.5 || cfg.Timer.Warning != 2.5 || cfg.Timer.Threshold != 0.1 {
		t.Errorf("unexpected thresholds %+v", cfg.Timer)
	}
	if len(cfg.Timer.TypeFilter) != 2 || cfg.Timer.TypeFilter[1] != domain.OutcomeError {
		t.Errorf("unexpected filter %v", cfg.Timer.TypeFilter)
	}
	if cfg.Timer.JSONFile != "out.json" {
		t.Errorf("expected json file out.json, got %s", cfg.Timer.JSONFile)
	}
	if !cfg.Timer.Color {
		t.Error("unset flag should not override config value")
	}
	if !cfg.Timer.Enabled {
		t.Error("expected timer to stay enabled")
	}
}

func TestApplyTimerFlags_Disable(t *testing.T) {
	fs, flags, err := parse(t, "--with-timer=false")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	cfg := config.New()
	if err := ApplyTimerFlags(fs, flags, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timer.Enabled {
		t.Error("expected timer to be disabled")
	}
}

func TestTimerFlags_NonNumeric(t *testing.T) {
	tests := [][]string{
		{"--timer-ok", "fast"},
		{"--timer-warning", "1s"},
		{"--timer-threshold", "abc"},
		{"--timer-top-n", "1.5"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			if _, _, err := parse(t, args...); err == nil {
				t.Errorf("expected parse error for %v", args)
			}
		})
	}
}

func TestApplyTimerFlags_InvalidTypeFilter(t *testing.T) {
	fs, flags, err := parse(t, "--timer-typefilter", "passed,flaky")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	err = ApplyTimerFlags(fs, flags, config.New())
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected config error, got %v", err)
	}
	if cfgErr.Option != "timer-typefilter" {
		t.Errorf("expected timer-typefilter, got %s", cfgErr.Option)
	}
}
