package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/JeffJassky/pyhsim/simulate"
)

// SQLiteLogger records completed simulation runs for later inspection and
// CSV export via ExportLogData. Unlike a fresh-each-run log, an existing
// database file is appended to, so a chained multi-day run logs each day's
// response into the same file under its own Runs row.
type SQLiteLogger struct {
	db *sql.DB
}

// NewSQLiteLogger opens (creating if absent) the database at
// dataSourceName and ensures its schema exists.
func NewSQLiteLogger(dataSourceName string) (*SQLiteLogger, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open database at %s: %w", dataSourceName, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: failed to ping database at %s: %w", dataSourceName, err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: failed to create schema: %w", err)
	}
	return &SQLiteLogger{db: db}, nil
}

// LogRun inserts one Runs row plus every sampled signal value and
// triggered monitor result from resp, in a single transaction, and returns
// the new row's RunID.
func (l *SQLiteLogger) LogRun(resp simulate.Response) (int64, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	runRes, err := tx.Exec(
		`INSERT INTO Runs (StartMinute, EndMinute, StepMinutes) VALUES (?, ?, ?)`,
		resp.Grid.StartMinute, resp.Grid.EndMinute, resp.Grid.StepMinutes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: failed to insert Runs row: %w", err)
	}
	runID, err := runRes.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: failed to read new run id: %w", err)
	}

	seriesStmt, err := tx.Prepare(`INSERT INTO SignalSeries (RunID, SignalKey, MinuteOfSim, Value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: failed to prepare SignalSeries insert: %w", err)
	}
	defer seriesStmt.Close()

	for key, values := range resp.Series {
		for i, v := range values {
			minute := resp.Grid.StartMinute + float64(i)*resp.Grid.StepMinutes
			if _, err := seriesStmt.Exec(runID, string(key), minute, v); err != nil {
				return 0, fmt.Errorf("storage: failed to insert SignalSeries row for %s: %w", key, err)
			}
		}
	}

	resultStmt, err := tx.Prepare(`INSERT INTO MonitorResults (RunID, DefinitionID, SignalKey, DetectedAtMinute, TriggerValue, Outcome, Message) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: failed to prepare MonitorResults insert: %w", err)
	}
	defer resultStmt.Close()

	for _, r := range resp.MonitorResults {
		if _, err := resultStmt.Exec(runID, r.ID, string(r.Signal), r.DetectedAtMinute, r.TriggerValue, string(r.Outcome), r.Message); err != nil {
			return 0, fmt.Errorf("storage: failed to insert MonitorResults row for %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: failed to commit transaction: %w", err)
	}
	return runID, nil
}

// DBForTest exposes the underlying connection so tests can inspect the
// schema and rows directly; not meant for use outside this package's tests.
func (l *SQLiteLogger) DBForTest() *sql.DB {
	return l.db
}

// Close closes the underlying database connection.
func (l *SQLiteLogger) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}
