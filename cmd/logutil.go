package cmd

import (
	"github.com/spf13/cobra"
)

// logutilCmd is the parent command for log-inspection subcommands; it does
// nothing on its own beyond grouping "export" and any future subcommands.
var logutilCmd = &cobra.Command{
	Use:   "logutil",
	Short: "Utilities for inspecting SQLite run logs.",
	Long: `logutil provides subcommands for processing and exporting the
SQLite logs produced by "pyhsim simulate --db" and "pyhsim chain --db".`,
}

func init() {
	rootCmd.AddCommand(logutilCmd)
}
