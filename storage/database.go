package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// createTables defines the schema a SQLiteLogger's database needs: one row
// per logged run (Runs), one row per sampled signal value (SignalSeries),
// and one row per triggered monitor (MonitorResults).
func createTables(db *sql.DB) error {
	runsTableSQL := `
	CREATE TABLE IF NOT EXISTS Runs (
		RunID INTEGER PRIMARY KEY AUTOINCREMENT,
		StartedAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		StartMinute REAL NOT NULL,
		EndMinute REAL NOT NULL,
		StepMinutes REAL NOT NULL
	);`
	if _, err := db.Exec(runsTableSQL); err != nil {
		return fmt.Errorf("storage: failed to create Runs table: %w", err)
	}

	signalSeriesTableSQL := `
	CREATE TABLE IF NOT EXISTS SignalSeries (
		SeriesID INTEGER PRIMARY KEY AUTOINCREMENT,
		RunID INTEGER NOT NULL,
		SignalKey TEXT NOT NULL,
		MinuteOfSim REAL NOT NULL,
		Value REAL NOT NULL,
		FOREIGN KEY (RunID) REFERENCES Runs (RunID)
	);`
	if _, err := db.Exec(signalSeriesTableSQL); err != nil {
		return fmt.Errorf("storage: failed to create SignalSeries table: %w", err)
	}

	monitorResultsTableSQL := `
	CREATE TABLE IF NOT EXISTS MonitorResults (
		ResultID INTEGER PRIMARY KEY AUTOINCREMENT,
		RunID INTEGER NOT NULL,
		DefinitionID TEXT NOT NULL,
		SignalKey TEXT NOT NULL,
		DetectedAtMinute REAL NOT NULL,
		TriggerValue REAL NOT NULL,
		Outcome TEXT NOT NULL,
		Message TEXT,
		FOREIGN KEY (RunID) REFERENCES Runs (RunID)
	);`
	if _, err := db.Exec(monitorResultsTableSQL); err != nil {
		return fmt.Errorf("storage: failed to create MonitorResults table: %w", err)
	}
	return nil
}
