package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gtt/internal/config"
	"gtt/internal/domain"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// MySQLHistory appends every report to a MySQL table so timings can be
// compared across runs
type MySQLHistory struct {
	dsn   string
	table string
	log   logrus.FieldLogger

	// now and newRunID are replaceable in tests
	now      func() time.Time
	newRunID func() string
}

// NewMySQLHistory creates a history store from the config's history settings
func NewMySQLHistory(cfg *config.Config, log logrus.FieldLogger) (*MySQLHistory, error) {
	table := cfg.History.Table
	if table == "" {
		table = config.DefaultHistoryTable
	}
	if !isValidTableName(table) {
		return nil, &config.Error{Option: "history table", Reason: fmt.Sprintf("invalid table name %q", table)}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MySQLHistory{
		dsn:      cfg.History.DSN,
		table:    table,
		log:      log,
		now:      time.Now,
		newRunID: func() string { return uuid.NewString() },
	}, nil
}

// Save inserts one row per report entry under a fresh run id
func (h *MySQLHistory) Save(report domain.Report) error {
	db, err := sql.Open("mysql", h.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to history database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping history database: %w", err)
	}

	return h.SaveTo(ctx, db, report)
}

// SaveTo writes the report using an open database handle
func (h *MySQLHistory) SaveTo(ctx context.Context, db *sql.DB, report domain.Report) error {
	if _, err := db.ExecContext(ctx, h.createTableQuery()); err != nil {
		return fmt.Errorf("failed to create history table %s: %w", h.table, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, h.insertQuery())
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer stmt.Close()

	runID := h.newRunID()
	recordedAt := h.now().UTC()
	for _, entry := range report.Entries {
		if _, err := stmt.ExecContext(ctx, runID, entry.ID, string(entry.Outcome), entry.Seconds, recordedAt); err != nil {
			return fmt.Errorf("failed to insert timing for %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}

	h.log.WithFields(logrus.Fields{
		"run_id": runID,
		"table":  h.table,
		"tests":  len(report.Entries),
	}).Debug("Saved timing history")
	return nil
}

func (h *MySQLHistory) createTableQuery() string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"`id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY, "+
		"`run_id` CHAR(36) NOT NULL, "+
		"`test_id` VARCHAR(512) NOT NULL, "+
		"`status` VARCHAR(16) NOT NULL, "+
		"`time_seconds` DOUBLE NOT NULL, "+
		"`recorded_at` DATETIME(6) NOT NULL, "+
		"INDEX `idx_run` (`run_id`), "+
		"INDEX `idx_test` (`test_id`(191))"+
		")", h.table)
}

func (h *MySQLHistory) insertQuery() string {
	return fmt.Sprintf("INSERT INTO `%s` (`run_id`, `test_id`, `status`, `time_seconds`, `recorded_at`) VALUES (?, ?, ?, ?, ?)", h.table)
}

// isValidTableName only allows plain identifiers
func isValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}
