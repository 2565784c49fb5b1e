package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/commutrace/commutrace/internal/catalog"
	"github.com/commutrace/commutrace/internal/impact"
	"github.com/commutrace/commutrace/internal/store"
	"github.com/commutrace/commutrace/internal/tui"
)

// newHistoryCmd creates the history command group. Running it without a
// subcommand lists the calculation log.
func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryList(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit records as JSON")

	cmd.AddCommand(newHistoryTUICmd(), newHistoryClearCmd())
	return cmd
}

// runHistoryList prints the record log most-recent-first.
func runHistoryList(cmd *cobra.Command, jsonOutput bool) error {
	recordStore, err := openRecordStore()
	if err != nil {
		return err
	}

	records := recordStore.List()

	if jsonOutput {
		data, marshalErr := json.MarshalIndent(records, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to serialize records: %w", marshalErr)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No calculations recorded yet.")
		return nil
	}

	for _, r := range records {
		cmd.Println(formatRecordLine(r))
	}
	return nil
}

// formatRecordLine renders one record for the plain listing. Vehicle
// keys that no longer resolve against the catalog display as the
// literal stored string.
func formatRecordLine(r store.Record) string {
	vehicle := r.VehicleType
	if _, err := catalog.Lookup(vehicle); err != nil {
		vehicle += " (?)"
	}

	legacy := ""
	if r.AssumedLegacyUnits {
		legacy = "  [assumed legacy units]"
	}

	return fmt.Sprintf("  %s  %-12s %7.2f mi  %s/day  %s/yr%s",
		r.Timestamp.Format("2006-01-02 15:04"),
		vehicle,
		r.DistanceMiles,
		impact.FormatMass(r.EmissionsPerDay, r.EmissionsUnit),
		impact.FormatMass(r.EmissionsPerYear, r.EmissionsUnit),
		legacy)
}

// newHistoryTUICmd creates the interactive history browser.
func newHistoryTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse past calculations interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			recordStore, err := openRecordStore()
			if err != nil {
				return err
			}

			model := tui.NewHistoryModel(recordStore.List())
			_, err = tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
}

// newHistoryClearCmd creates the confirmation-gated clear command.
func newHistoryClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase the entire calculation log",
		Long:  "Erase the entire calculation log. Irreversible; there is no per-record delete.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			recordStore, err := openRecordStore()
			if err != nil {
				return err
			}

			count := recordStore.Count()
			if count == 0 {
				cmd.Println("History is already empty.")
				return nil
			}

			if !yes {
				result := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
					fmt.Sprintf("Permanently erase all %d records?", count))
				if !result.Accepted {
					cmd.Println("Aborted.")
					return nil
				}
			}

			if err := recordStore.Clear(); err != nil {
				return err
			}

			cmd.Printf("Cleared %d records.\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
