package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JeffJassky/pyhsim/storage"
)

func TestExportLogDataWritesSignalSeriesCSV(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	logger, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteLogger failed: %v", err)
	}
	if _, err := logger.LogRun(testResponse()); err != nil {
		t.Fatalf("LogRun failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "signals.csv")
	if err := storage.ExportLogData(dbPath, "SignalSeries", "csv", outPath); err != nil {
		t.Fatalf("ExportLogData failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read exported CSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected a header row plus 3 data rows, got %d lines: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "SeriesID,RunID,SignalKey,MinuteOfSim,Value") {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "cortisol") {
		t.Errorf("expected first data row to mention cortisol, got %q", lines[1])
	}
}

func TestExportLogDataWritesMonitorResultsCSV(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	logger, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteLogger failed: %v", err)
	}
	if _, err := logger.LogRun(testResponse()); err != nil {
		t.Fatalf("LogRun failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "monitors.csv")
	if err := storage.ExportLogData(dbPath, "MonitorResults", "csv", outPath); err != nil {
		t.Fatalf("ExportLogData failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read exported CSV: %v", err)
	}
	if !strings.Contains(string(data), "cortisol-awakening-spike") {
		t.Errorf("expected exported CSV to contain the logged monitor result id, got %q", string(data))
	}
}

func TestExportLogDataRejectsUnknownTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	logger, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteLogger failed: %v", err)
	}
	logger.Close()

	if err := storage.ExportLogData(dbPath, "Bogus", "csv", filepath.Join(t.TempDir(), "out.csv")); err == nil {
		t.Fatalf("expected an error for an unsupported table name, got nil")
	}
}

func TestExportLogDataRejectsUnknownFormat(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	logger, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteLogger failed: %v", err)
	}
	logger.Close()

	if err := storage.ExportLogData(dbPath, "SignalSeries", "parquet", filepath.Join(t.TempDir(), "out.parquet")); err == nil {
		t.Fatalf("expected an error for an unsupported export format, got nil")
	}
}
