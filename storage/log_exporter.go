package storage

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// ExportLogData connects to the SQLite database at dbPath, reads tableName
// (one of "SignalSeries" or "MonitorResults"), and writes it as CSV to
// outputPath, or to stdout when outputPath is empty. Only "csv" is
// currently supported.
func ExportLogData(dbPath, tableName, format, outputPath string) error {
	if format != "csv" {
		return fmt.Errorf("storage: unsupported export format %q, only \"csv\" is currently supported", format)
	}

	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("storage: failed to open database at %s: %w", dbPath, err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("storage: failed to ping database at %s: %w", dbPath, err)
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("storage: failed to create output file %s: %w", outputPath, err)
		}
		defer file.Close()
		out = file
	}
	writer := csv.NewWriter(out)
	defer writer.Flush()

	switch tableName {
	case "SignalSeries":
		return exportSignalSeries(db, writer)
	case "MonitorResults":
		return exportMonitorResults(db, writer)
	default:
		return fmt.Errorf("storage: unsupported table %q, supported tables are \"SignalSeries\", \"MonitorResults\"", tableName)
	}
}

func exportSignalSeries(db *sql.DB, writer *csv.Writer) error {
	headers := []string{"SeriesID", "RunID", "SignalKey", "MinuteOfSim", "Value"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("storage: failed to write CSV headers for SignalSeries: %w", err)
	}

	rows, err := db.Query(`SELECT SeriesID, RunID, SignalKey, MinuteOfSim, Value FROM SignalSeries ORDER BY RunID, SignalKey, MinuteOfSim`)
	if err != nil {
		return fmt.Errorf("storage: failed to query SignalSeries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seriesID, runID int64
		var signalKey string
		var minute, value float64
		if err := rows.Scan(&seriesID, &runID, &signalKey, &minute, &value); err != nil {
			return fmt.Errorf("storage: failed to scan row from SignalSeries: %w", err)
		}
		record := []string{
			strconv.FormatInt(seriesID, 10), strconv.FormatInt(runID, 10), signalKey,
			strconv.FormatFloat(minute, 'f', -1, 64), strconv.FormatFloat(value, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("storage: failed to write CSV record for SignalSeries: %w", err)
		}
	}
	return rows.Err()
}

func exportMonitorResults(db *sql.DB, writer *csv.Writer) error {
	headers := []string{"ResultID", "RunID", "DefinitionID", "SignalKey", "DetectedAtMinute", "TriggerValue", "Outcome", "Message"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("storage: failed to write CSV headers for MonitorResults: %w", err)
	}

	rows, err := db.Query(`SELECT ResultID, RunID, DefinitionID, SignalKey, DetectedAtMinute, TriggerValue, Outcome, Message FROM MonitorResults ORDER BY RunID, DetectedAtMinute`)
	if err != nil {
		return fmt.Errorf("storage: failed to query MonitorResults: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resultID, runID int64
		var definitionID, signalKey, outcome string
		var message sql.NullString
		var detectedAt, triggerValue float64
		if err := rows.Scan(&resultID, &runID, &definitionID, &signalKey, &detectedAt, &triggerValue, &outcome, &message); err != nil {
			return fmt.Errorf("storage: failed to scan row from MonitorResults: %w", err)
		}
		record := []string{
			strconv.FormatInt(resultID, 10), strconv.FormatInt(runID, 10), definitionID, signalKey,
			strconv.FormatFloat(detectedAt, 'f', -1, 64), strconv.FormatFloat(triggerValue, 'f', -1, 64),
			outcome, nullStringToString(message),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("storage: failed to write CSV record for MonitorResults: %w", err)
		}
	}
	return rows.Err()
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
