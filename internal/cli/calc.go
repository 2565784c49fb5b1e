package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/commutrace/commutrace/internal/config"
	"github.com/commutrace/commutrace/internal/engine"
	"github.com/commutrace/commutrace/internal/impact"
	"github.com/commutrace/commutrace/internal/store"
	"github.com/commutrace/commutrace/internal/tui"
	"github.com/commutrace/commutrace/internal/units"
)

// calcFlags holds the calc command's parsed flags.
type calcFlags struct {
	distance   float64
	vehicle    string
	efficiency float64
	unitsFlag  string
	yes        bool
	jsonOutput bool
}

// calcOutput is the JSON shape of a calculation result.
type calcOutput struct {
	Vehicle          string  `json:"vehicle"`
	DistanceMiles    float64 `json:"distance_miles"`
	Efficiency       float64 `json:"efficiency"`
	EfficiencyUnit   string  `json:"efficiency_unit"`
	EmissionsPerDay  float64 `json:"emissions_per_day"`
	EmissionsPerWeek float64 `json:"emissions_per_week"`
	EmissionsPerYear float64 `json:"emissions_per_year"`
	EmissionsUnit    string  `json:"emissions_unit"`
	CarbonCredits    float64 `json:"carbon_credits"`
	UrbanTrees       float64 `json:"urban_trees"`
	ImpactLevel      string  `json:"impact_level"`
}

// newCalcCmd creates the calc command.
func newCalcCmd() *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate commute CO₂ emissions",
		Long: "Calculate daily, weekly and yearly CO₂ emissions for a commute " +
			"and append the result to the local history.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, flags)
		},
	}

	cmd.Flags().Float64VarP(&flags.distance, "distance", "d", 0,
		"one-way commute distance (miles, or km under metric units)")
	cmd.Flags().StringVarP(&flags.vehicle, "vehicle", "v", "",
		"vehicle type (see `commutrace vehicles`)")
	cmd.Flags().Float64VarP(&flags.efficiency, "efficiency", "e", 0,
		"fuel efficiency override (MPG, or L/100km under metric units)")
	cmd.Flags().StringVar(&flags.unitsFlag, "units", "",
		"unit system for this run: imperial or metric (default: configured preference)")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false,
		"proceed without confirmation on suspicious efficiency values")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false,
		"emit the result as JSON")

	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}

// runCalc validates the input, runs the engine and persists the record.
func runCalc(cmd *cobra.Command, flags calcFlags) error {
	sys, err := resolveUnits(flags.unitsFlag)
	if err != nil {
		return err
	}

	input := engine.Input{
		Distance:   flags.distance,
		Units:      sys,
		VehicleKey: flags.vehicle,
	}
	if cmd.Flags().Changed("efficiency") {
		eff := flags.efficiency
		input.Efficiency = &eff
	}

	// Validation errors surface synchronously, before any computation.
	if err := engine.Validate(input); err != nil {
		return err
	}

	// Suspicious efficiency is a soft warning the user may override.
	if err := engine.CheckSuspicious(input); err != nil {
		if !flags.yes {
			result := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
				fmt.Sprintf("%v, continue anyway?", err))
			if !result.Accepted {
				return err
			}
		}
		log.Warn().
			Str("component", "cli").
			Float64("efficiency", flags.efficiency).
			Msg("suspicious efficiency accepted by user")
	}

	// UX pacing before the result is published; skipped when the output
	// is not a terminal or is machine-readable.
	if tui.IsTTY() && !flags.jsonOutput {
		pace := tui.NewPaceModel(tui.PaceDelay)
		if _, paceErr := tea.NewProgram(pace, tea.WithOutput(cmd.OutOrStdout())).Run(); paceErr != nil {
			log.Debug().Err(paceErr).Msg("pacing spinner failed, continuing")
		}
	}

	result, err := engine.Compute(input)
	if err != nil {
		return err
	}

	summary, err := impact.Summarize(result.PerDay, result.PerYear, sys)
	if err != nil {
		return err
	}

	appendRecord(result)

	if flags.jsonOutput {
		return printCalcJSON(cmd, result, summary)
	}

	cmd.Println(tui.RenderResult(result, summary))
	return nil
}

// appendRecord persists the calculation. Store failures are logged and
// swallowed; they never block the flow.
func appendRecord(result engine.Result) {
	recordStore, err := openRecordStore()
	if err != nil {
		log.Warn().
			Str("component", "cli").
			Err(err).
			Msg("record store unavailable, calculation not saved")
		return
	}

	if err := recordStore.Append(store.NewRecord(result, time.Now())); err != nil {
		log.Warn().
			Str("component", "cli").
			Err(err).
			Msg("failed to save calculation record")
	}
}

// printCalcJSON emits the result and derived metrics as JSON.
func printCalcJSON(cmd *cobra.Command, result engine.Result, summary impact.Summary) error {
	out := calcOutput{
		Vehicle:          result.VehicleKey,
		DistanceMiles:    result.DistanceMiles,
		Efficiency:       result.Efficiency,
		EfficiencyUnit:   result.EfficiencyUnit,
		EmissionsPerDay:  result.PerDay,
		EmissionsPerWeek: result.PerWeek,
		EmissionsPerYear: result.PerYear,
		EmissionsUnit:    result.Unit,
		CarbonCredits:    summary.CarbonCredits,
		UrbanTrees:       summary.UrbanTrees,
		ImpactLevel:      summary.Level.String(),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	cmd.Println(string(data))
	return nil
}

// resolveUnits returns the unit system for this run: the --units flag
// when given, otherwise the persisted preference.
func resolveUnits(flagValue string) (units.System, error) {
	if flagValue != "" {
		return units.ParseSystem(flagValue)
	}
	return config.GetGlobal().UnitSystem(), nil
}
