// Package runlog persists per-stage pipeline events to a local SQLite
// database for after-the-fact inspection. It is optional: when no database
// path is configured the log is a no-op, and once open it never fails a run
// over a persistence problem.
package runlog

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"blogsmith/pkg/logx"
)

// PathEnv names the environment variable holding the run-log database path.
const PathEnv = "BLOGSMITH_RUNLOG"

const schema = `CREATE TABLE IF NOT EXISTS stage_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	stage TEXT NOT NULL,
	iteration INTEGER NOT NULL DEFAULT 0,
	note TEXT,
	recorded_at DATETIME DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
)`

// Log is a SQLite-backed stage-event sink.
type Log struct {
	db     *sql.DB
	logger *logx.Logger
}

// Open creates or opens the run log at dbPath.
func Open(dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_foreign_keys=ON&_journal_mode=WAL&_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping run log: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize run log schema: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Log{db: db, logger: logx.NewLogger("runlog")}, nil
}

// FromEnv opens the run log named by BLOGSMITH_RUNLOG. With the variable
// unset it returns (nil, nil): a nil *Log is a valid no-op sink.
func FromEnv() (*Log, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		return nil, nil
	}
	return Open(path)
}

// RecordStage appends one stage event. Write failures are logged and
// swallowed; the pipeline must not fail over its own audit trail.
func (l *Log) RecordStage(runID, stage string, iteration int, note string) {
	if l == nil {
		return
	}
	_, err := l.db.Exec(
		`INSERT INTO stage_events (run_id, stage, iteration, note) VALUES (?, ?, ?, ?)`,
		runID, stage, iteration, note)
	if err != nil {
		l.logger.Warn("failed to record stage event %s/%s: %v", runID, stage, err)
	}
}

// StageEvent is one recorded row.
type StageEvent struct {
	RunID      string
	Stage      string
	Iteration  int
	Note       string
	RecordedAt string
}

// Events returns all events for a run in insertion order.
func (l *Log) Events(runID string) ([]StageEvent, error) {
	if l == nil {
		return nil, nil
	}
	rows, err := l.db.Query(
		`SELECT run_id, stage, iteration, note, recorded_at FROM stage_events WHERE run_id = ? ORDER BY id`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stage events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []StageEvent
	for rows.Next() {
		var ev StageEvent
		if err := rows.Scan(&ev.RunID, &ev.Stage, &ev.Iteration, &ev.Note, &ev.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stage event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Close releases the database handle. Safe on a nil log.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	return l.db.Close()
}
