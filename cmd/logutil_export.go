package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JeffJassky/pyhsim/storage"
)

var (
	logutilExportDbPath string
	logutilExportTable  string
	logutilExportFormat string
	logutilExportOutput string
)

var logutilExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a table from a SQLite run log to CSV.",
	Long: `Reads a SQLite database produced by a simulate/chain run and writes
the given table's rows to CSV, either to --out or to stdout. Supports the
"SignalSeries" and "MonitorResults" tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storage.ExportLogData(logutilExportDbPath, logutilExportTable, logutilExportFormat, logutilExportOutput); err != nil {
			return fmt.Errorf("logutil export failed: %w", err)
		}
		if logutilExportOutput != "" {
			fmt.Printf("Exported %s to %s\n", logutilExportTable, logutilExportOutput)
		}
		return nil
	},
}

func init() {
	logutilCmd.AddCommand(logutilExportCmd)

	logutilExportCmd.Flags().StringVarP(&logutilExportDbPath, "db", "d", "", "Path to the SQLite database (required).")
	_ = logutilExportCmd.MarkFlagRequired("db")

	logutilExportCmd.Flags().StringVarP(&logutilExportTable, "table", "t", "", "Table to export: SignalSeries or MonitorResults (required).")
	_ = logutilExportCmd.MarkFlagRequired("table")

	logutilExportCmd.Flags().StringVarP(&logutilExportFormat, "format", "f", "csv", "Output format (currently only csv).")
	logutilExportCmd.Flags().StringVarP(&logutilExportOutput, "out", "o", "", "Output file (stdout if unset).")
}
