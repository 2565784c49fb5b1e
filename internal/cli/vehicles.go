package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commutrace/commutrace/internal/catalog"
	"github.com/commutrace/commutrace/internal/units"
)

// newVehiclesCmd creates the vehicles command, which prints the static
// vehicle catalog with defaults in the active unit system.
func newVehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicle types and their default efficiencies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := resolveUnits("")
			if err != nil {
				return err
			}

			for _, p := range catalog.Profiles() {
				cmd.Printf("  %-12s %-22s %s\n", p.Key, formatEfficiency(p, sys), p.Description)
			}
			return nil
		},
	}
}

// formatEfficiency renders a profile's default efficiency in the given
// unit system. Electric-equivalent vehicles always display MPGe and
// shared transit has no user-facing efficiency figure.
func formatEfficiency(p catalog.VehicleProfile, sys units.System) string {
	switch p.Category {
	case catalog.SharedTransit:
		return "fixed per-passenger"
	case catalog.ElectricEquivalent:
		return fmt.Sprintf("%.0f MPGe", p.DefaultEfficiency)
	default:
		if sys == units.Metric {
			lPer100, err := units.MPGToLPer100Km(p.DefaultEfficiency)
			if err == nil {
				return fmt.Sprintf("%.1f L/100km", lPer100)
			}
		}
		return fmt.Sprintf("%.0f MPG", p.DefaultEfficiency)
	}
}
