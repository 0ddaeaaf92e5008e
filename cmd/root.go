// Package cmd wires the Cobra command tree for the physiological
// simulation core's CLI, following the structure of crownet/cmd.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JeffJassky/pyhsim/simulate"
)

var (
	// Persistent flags shared by every subcommand.
	configFile string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "pyhsim",
	Short: "pyhsim: deterministic physiological simulation core",
	Long: `pyhsim runs a time-stepped RK4 integration of a coupled hormone,
neurotransmitter, and metabolic signal model, with pharmacokinetic and
pharmacodynamic modeling of scheduled interventions.
For details on a specific command, use: pyhsim [command] --help`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main. The process exit code distinguishes a bad scenario
// (2: ErrValidation/ErrConfig, fixable by editing the input) from a failed
// run (1: ErrNumeric or any other error), per the simulation core's own
// simulate.SimError.Kind classification.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeForError(err))
	}
}

// exitCodeForError maps a command error to a process exit code. Errors not
// wrapping a *simulate.SimError (flag parsing, file I/O) exit 1.
func exitCodeForError(err error) int {
	var simErr *simulate.SimError
	if errors.As(err, &simErr) {
		switch simErr.Kind {
		case simulate.ErrValidation, simulate.ErrConfig:
			return 2
		}
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "Path to a TOML scenario configuration file.")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed value; accepted for compatibility, no command currently reads it.")
}
