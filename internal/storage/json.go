package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gtt/internal/config"
	"gtt/internal/domain"
	"gtt/internal/timer"
)

// Save writes every entry of the report to the JSON file, replacing any
// previous content. Keys are sorted and indented by four spaces.
func (s *JSONStorage) Save(report domain.Report) error {
	data, err := Marshal(report)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write timings: %w", err)
	}
	return nil
}

// Marshal encodes a report in the JSON file format
func Marshal(report domain.Report) ([]byte, error) {
	output := domain.TimingsOutput{
		Tests: make(map[string]domain.TestTiming, len(report.Entries)),
	}
	for _, entry := range report.Entries {
		output.Tests[entry.ID] = domain.TestTiming{
			Status: entry.Outcome,
			Time:   entry.Seconds,
		}
	}

	data, err := json.MarshalIndent(output, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal timings: %w", err)
	}
	return data, nil
}

// Load reads a report back from the JSON file. Percentages are recomputed
// and tiers use the default thresholds.
func (s *JSONStorage) Load() (*domain.Report, error) {
	return s.LoadWith(config.New().Timer)
}

// LoadWith reads a report back from the JSON file, classifying tiers with opts
func (s *JSONStorage) LoadWith(opts config.Timer) (*domain.Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read timings file: %w", err)
	}

	var output domain.TimingsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse timings: %w", err)
	}

	ids := make([]string, 0, len(output.Tests))
	for id := range output.Tests {
		ids = append(ids, id)
	}
	// Map order is lost in the file; ties fall back to the test id
	sort.Strings(ids)

	records := make([]domain.TestRecord, 0, len(ids))
	for _, id := range ids {
		timing := output.Tests[id]
		records = append(records, domain.TestRecord{
			ID:       id,
			Elapsed:  secondsToDuration(timing.Time),
			Outcome:  timing.Status,
			Finished: true,
		})
	}

	report := timer.BuildReport(records, opts)
	return &report, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
