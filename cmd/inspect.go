package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JeffJassky/pyhsim/registry"
)

var inspectRegistry bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Validate and print the static signal/auxiliary registry.",
	Long: `inspect loads the default registry (the same one "simulate" and
"chain" use when no custom registry is supplied), which validates every
production, clearance, and coupling source against the known signal and
auxiliary keys. --registry prints the resulting catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.NewDefaultRegistry()
		fmt.Printf("registry OK: %d signal(s), %d auxiliary entr(y/ies)\n", len(reg.Signals), len(reg.Auxiliary))

		if inspectRegistry {
			fmt.Println("\nSignals:")
			for _, s := range reg.Signals {
				fmt.Printf("  %-24s %-10s tau=%.1fmin production=%d clearance=%d couplings=%d\n",
					s.Key, s.Unit, s.Tau, len(s.Production), len(s.Clearance), len(s.Couplings))
			}
			fmt.Println("\nAuxiliary:")
			for _, a := range reg.Auxiliary {
				fmt.Printf("  %-24s tau=%.1fmin policy=%d production=%d clearance=%d couplings=%d\n",
					a.Key, a.Tau, a.Policy, len(a.Production), len(a.Clearance), len(a.Couplings))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectRegistry, "registry", false, "Print every signal and auxiliary definition in the default registry.")
}
