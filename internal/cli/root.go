// Package cli wires the commutrace command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/commutrace/commutrace/internal/config"
)

// NewRootCmd creates the root Cobra command for the commutrace CLI.
// It sets up logging from the persisted configuration and registers the
// calc, vehicles, history, config and offset subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "commutrace",
		Short:   "Estimate commute CO₂ emissions",
		Long:    "commutrace estimates your commute's CO₂ emissions from distance, vehicle type and fuel efficiency, and keeps a local history of past calculations.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			config.CloseLogFile()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newCalcCmd(),
		newVehiclesCmd(),
		newHistoryCmd(),
		newConfigCmd(),
		newOffsetCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate emissions for a 35 mile commute in an SUV
  commutrace calc --distance 35 --vehicle SUV

  # Override the fuel efficiency
  commutrace calc --distance 35 --vehicle SUV --efficiency 28

  # Metric units for this run only
  commutrace calc --distance 56 --vehicle Sedan --units metric

  # List vehicle types
  commutrace vehicles

  # Browse past calculations
  commutrace history
  commutrace history tui

  # Clear the calculation log
  commutrace history clear

  # Switch the persisted unit system
  commutrace config set units metric`
