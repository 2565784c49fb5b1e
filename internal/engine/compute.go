package engine

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/commutrace/commutrace/internal/catalog"
	"github.com/commutrace/commutrace/internal/units"
)

// Validate enforces the calculation pre-conditions.
//
// Distance must be a positive finite number. For combustion vehicles an
// explicit efficiency override must also be a positive finite number.
// Validate does not apply the suspicious-efficiency check; that is a
// soft warning handled separately by CheckSuspicious.
func Validate(in Input) error {
	if !(in.Distance > 0) || math.IsInf(in.Distance, 0) {
		return ErrInvalidDistance
	}

	profile, err := catalog.Lookup(in.VehicleKey)
	if err != nil {
		return fmt.Errorf("vehicle %q: %w", in.VehicleKey, err)
	}

	if profile.Category == catalog.Combustion && in.Efficiency != nil {
		eff := *in.Efficiency
		if !(eff > 0) || math.IsInf(eff, 0) {
			return ErrInvalidEfficiency
		}
	}

	return nil
}

// CheckSuspicious returns ErrEfficiencySuspicious when an Imperial
// combustion efficiency exceeds SuspiciousMPGThreshold, nil otherwise.
// Callers may proceed anyway after an explicit user override.
func CheckSuspicious(in Input) error {
	if in.Units != units.Imperial || in.Efficiency == nil {
		return nil
	}

	profile, err := catalog.Lookup(in.VehicleKey)
	if err != nil || profile.Category != catalog.Combustion {
		return nil
	}

	if *in.Efficiency > SuspiciousMPGThreshold {
		return ErrEfficiencySuspicious
	}
	return nil
}

// Compute calculates daily, weekly and yearly CO₂ emissions for the
// given input, in the mass unit matching in.Units.
//
// The weekly and yearly figures are computed from the unrounded daily
// rate and each rounded independently to 2 decimals; they are never
// derived from the already-rounded daily value, so rounding error does
// not compound. The rounded figures are the authoritative values that
// get persisted.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	profile, err := catalog.Lookup(in.VehicleKey)
	if err != nil {
		return Result{}, fmt.Errorf("vehicle %q: %w", in.VehicleKey, err)
	}

	miles := in.Distance
	if in.Units == units.Metric {
		miles = units.KmToMiles(in.Distance)
	}

	var (
		dayLbs         float64
		efficiency     float64
		efficiencyUnit string
	)

	switch profile.Category {
	case catalog.SharedTransit:
		// Fixed per-person rate; efficiency input is ignored entirely.
		dayLbs = miles * busLbsPerPassengerMile
		efficiency = BusMPG
		efficiencyUnit = "mpg"

	case catalog.ElectricEquivalent:
		// Catalog MPGe rating only; user efficiency input is ignored.
		kwhPerMile := KWhPerGallonEquivalent / profile.DefaultEfficiency
		dayLbs = miles * kwhPerMile * GridLbsCO2PerKWh
		efficiency = profile.DefaultEfficiency
		efficiencyUnit = "mpge"

	case catalog.Combustion:
		input := profile.DefaultEfficiency
		if in.Units == units.Metric {
			// Catalog defaults are MPG; present the default in the
			// input unit space before resolving back.
			input, err = units.MPGToLPer100Km(profile.DefaultEfficiency)
			if err != nil {
				return Result{}, err
			}
		}
		if in.Efficiency != nil {
			input = *in.Efficiency
		}

		mpg := input
		if in.Units == units.Metric {
			mpg, err = units.LPer100KmToMPG(input)
			if err != nil {
				return Result{}, err
			}
		}

		dayLbs = miles / mpg * GasolineLbsCO2PerGallon
		efficiency = input
		efficiencyUnit = in.Units.EfficiencyUnit()
	}

	day, week, year := dayLbs, dayLbs*CommuteDaysPerWeek, dayLbs*CommuteDaysPerWeek*WeeksPerYear

	if in.Units == units.Metric {
		day = units.LbsToKg(day)
		week = units.LbsToKg(week)
		year = units.LbsToKg(year)
	}

	result := Result{
		PerDay:         round2(day),
		PerWeek:        round2(week),
		PerYear:        round2(year),
		Unit:           in.Units.MassUnit(),
		Units:          in.Units,
		VehicleKey:     profile.Key,
		DistanceMiles:  miles,
		Efficiency:     efficiency,
		EfficiencyUnit: efficiencyUnit,
	}

	log.Debug().
		Str("component", "engine").
		Str("vehicle", profile.Key).
		Str("category", profile.Category.String()).
		Float64("distance_miles", miles).
		Float64("per_day", result.PerDay).
		Str("unit", result.Unit).
		Msg("emissions computed")

	return result, nil
}

// round2 rounds to 2 decimal places, the stored-record precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
