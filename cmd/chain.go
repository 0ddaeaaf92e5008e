package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JeffJassky/pyhsim/cli"
	"github.com/JeffJassky/pyhsim/simulate"
)

var (
	chainScenarioPath string
	chainDays         int
	chainOutDir       string
	chainDbPath       string
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Run several linked days from one scenario, carrying state forward.",
	Long: `Runs the same scenario once per day for --days days, feeding each
day's FinalState in as the next day's initial state. Each day's final
state is written to <out-dir>/day-<N>.json, reproducing a multi-day
lifecycle (e.g. a week of a subject's hormone cycle) from a single
single-day scenario file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarioPath := chainScenarioPath
		if scenarioPath == "" {
			scenarioPath = configFile
		}
		if scenarioPath == "" {
			return fmt.Errorf("--scenario (or the persistent --configFile flag) is required")
		}
		if chainDays < 1 {
			return fmt.Errorf("--days must be at least 1, got %d", chainDays)
		}
		if chainOutDir == "" {
			return fmt.Errorf("--out-dir is required")
		}
		if err := os.MkdirAll(chainOutDir, 0755); err != nil {
			return fmt.Errorf("could not create --out-dir %s: %w", chainOutDir, err)
		}

		var carried *simulate.State
		for day := 0; day < chainDays; day++ {
			dayOutPath := filepath.Join(chainOutDir, fmt.Sprintf("day-%d.json", day))
			orchestrator := cli.NewOrchestrator(scenarioPath, dayOutPath, chainDbPath)
			orchestrator.GridOverride = &cli.GridOverride{Day: day, DayChanged: true}

			resp, err := orchestrator.RunOnce(carried)
			if err != nil {
				return fmt.Errorf("day %d failed: %w", day, err)
			}
			finalState := resp.FinalState
			carried = &finalState
		}

		fmt.Printf("Chained %d day(s) into %s\n", chainDays, chainOutDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)

	chainCmd.Flags().StringVar(&chainScenarioPath, "scenario", "", "Path to the TOML scenario file reused for every day.")
	chainCmd.Flags().IntVar(&chainDays, "days", 1, "Number of consecutive days to chain.")
	chainCmd.Flags().StringVar(&chainOutDir, "out-dir", "", "Directory to write each day's final state file into.")
	chainCmd.Flags().StringVar(&chainDbPath, "db", "", "Path to a SQLite database to log every day's run into.")
}
