// Package impact derives comparison metrics from computed emissions:
// carbon-credit counts, urban-tree equivalents and a coarse impact
// level for display.
package impact

import (
	"fmt"
	"math"

	"github.com/commutrace/commutrace/internal/units"
)

// Level is a coarse severity bucket for a daily emission figure.
type Level int

const (
	// Low impact: under 10 per day in the display unit.
	Low Level = iota

	// Moderate impact: under 50 per day in the display unit.
	Moderate

	// High impact: 50 or more per day in the display unit.
	High
)

// String returns a human-readable representation of the Level.
func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case Moderate:
		return "Moderate"
	case High:
		return "High"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// CarbonCredits converts a yearly emission figure to carbon credits
// (1 credit = 1 metric ton CO₂). The yearly figure is normalized to kg
// first regardless of the display unit system.
//
// Returns ErrNegativeEmissions for negative input.
func CarbonCredits(yearly float64, sys units.System) (float64, error) {
	if yearly < 0 {
		return 0, ErrNegativeEmissions
	}
	if math.IsInf(yearly, 0) || math.IsNaN(yearly) {
		return 0, ErrCalculationOverflow
	}

	kg := yearly
	if sys == units.Imperial {
		kg = yearly / LbsPerKg
	}
	return kg / KgPerCarbonCredit, nil
}

// UrbanTrees converts a yearly emission figure, in the display unit, to
// the number of urban trees needed to absorb it in a year. The Imperial
// and Metric offset constants are independently calibrated; the figure
// is divided by whichever matches the display unit, without converting.
//
// Returns ErrNegativeEmissions for negative input.
func UrbanTrees(yearly float64, sys units.System) (float64, error) {
	if yearly < 0 {
		return 0, ErrNegativeEmissions
	}
	if math.IsInf(yearly, 0) || math.IsNaN(yearly) {
		return 0, ErrCalculationOverflow
	}

	offset := TreeOffsetLbsPerYear
	if sys == units.Metric {
		offset = TreeOffsetKgPerYear
	}
	return yearly / offset, nil
}

// LevelFor buckets a per-day emission figure, in the currently active
// display unit, into Low/Moderate/High. The raw thresholds are shared
// between lbs and kg, so severity is effectively stricter under Metric.
// That unit-dependence is intentional and preserved.
func LevelFor(daily float64) Level {
	switch {
	case daily < LowDailyThreshold:
		return Low
	case daily < ModerateDailyThreshold:
		return Moderate
	default:
		return High
	}
}

// Summary bundles the derived metrics for one yearly emission figure.
type Summary struct {
	// CarbonCredits is the offset purchase size in metric tons.
	CarbonCredits float64

	// UrbanTrees is the tree-year equivalent in the display unit space.
	UrbanTrees float64

	// Level classifies the daily figure.
	Level Level
}

// Summarize computes all derived metrics for a daily/yearly pair in the
// given display unit system.
func Summarize(daily, yearly float64, sys units.System) (Summary, error) {
	credits, err := CarbonCredits(yearly, sys)
	if err != nil {
		return Summary{}, err
	}

	trees, err := UrbanTrees(yearly, sys)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		CarbonCredits: credits,
		UrbanTrees:    trees,
		Level:         LevelFor(daily),
	}, nil
}
