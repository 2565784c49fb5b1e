// Package engine computes commute CO₂ emissions.
//
// Given a daily commute distance, a vehicle type and an optional
// efficiency override, Compute produces daily, weekly and yearly CO₂
// mass in the unit matching the active unit system. Formula dispatch is
// by vehicle category: combustion vehicles via MPG, electric-equivalent
// vehicles via MPGe and grid intensity, transit buses via a fixed
// per-passenger rate.
package engine

import "github.com/commutrace/commutrace/internal/units"

// Input is the calculation request for a single commute.
type Input struct {
	// Distance is the one-way daily commute distance, in miles or km
	// per Units.
	Distance float64

	// Units is the active display unit system. It controls how Distance
	// and Efficiency are interpreted and the unit of the result.
	Units units.System

	// VehicleKey is a key into the vehicle catalog.
	VehicleKey string

	// Efficiency overrides the catalog default for combustion vehicles,
	// expressed in MPG (Imperial) or L/100km (Metric). Nil uses the
	// catalog default. Ignored for electric-equivalent and shared-transit
	// vehicles.
	Efficiency *float64
}

// Result holds the computed emissions plus the figures persisted in a
// calculation record.
type Result struct {
	// PerDay, PerWeek and PerYear are CO₂ mass in Unit, each rounded
	// independently to 2 decimals from the unrounded daily rate.
	PerDay  float64
	PerWeek float64
	PerYear float64

	// Unit is the mass unit of the three figures ("lbs" or "kg").
	Unit string

	// Units is the unit system the result was computed under.
	Units units.System

	// VehicleKey echoes the input vehicle.
	VehicleKey string

	// DistanceMiles is the input distance normalized to miles so that
	// historical records stay comparable across unit-system toggles.
	DistanceMiles float64

	// Efficiency and EfficiencyUnit record the effective efficiency and
	// the unit it was expressed in at calculation time ("mpg",
	// "l/100km" or "mpge").
	Efficiency     float64
	EfficiencyUnit string
}
