package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"gtt/internal/config"
	"gtt/internal/events"
	"gtt/internal/storage"
	"gtt/internal/timer"
	"gtt/internal/ui"
)

// newReporter builds the timing reporter with the stores the configuration
// asks for. The JSON file is written before the history.
func newReporter(cfg *config.Config, clock *events.StreamClock, out io.Writer, log logrus.FieldLogger) (*timer.Reporter, error) {
	var stores []timer.Store
	if path := cfg.GetJSONPath(); path != "" {
		stores = append(stores, storage.NewJSONFile(path))
	}
	if cfg.HistoryEnabled() {
		history, err := storage.NewMySQLHistory(cfg, log)
		if err != nil {
			return nil, err
		}
		stores = append(stores, history)
	}

	printer := ui.NewReportPrinter(out, ui.NewColorizer(cfg.Timer.Color))
	return timer.NewReporter(cfg.Timer, clock, printer, log, stores...), nil
}
