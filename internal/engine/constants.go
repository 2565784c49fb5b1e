package engine

// Emission factor constants.
//
// These are the fixed formula parameters; they are not configurable.
const (
	// GasolineLbsCO2PerGallon is the EPA emission factor for gasoline.
	GasolineLbsCO2PerGallon = 19.6

	// DieselLbsCO2PerGallon is the emission factor for diesel, used by
	// the transit-bus formula.
	DieselLbsCO2PerGallon = 22.45

	// BusMPG is the assumed fuel efficiency of a transit bus.
	BusMPG = 6.0

	// BusPassengers is the half-occupancy passenger count the bus
	// emission rate is divided across.
	BusPassengers = 15.0

	// KWhPerGallonEquivalent is the energy content of one gallon of
	// gasoline, the basis of the MPGe rating.
	KWhPerGallonEquivalent = 33.7

	// GridLbsCO2PerKWh is the US average grid carbon intensity.
	GridLbsCO2PerKWh = 0.92

	// CommuteDaysPerWeek scales the daily figure to a work week.
	CommuteDaysPerWeek = 5.0

	// WeeksPerYear scales the weekly figure to a year.
	WeeksPerYear = 52.0

	// SuspiciousMPGThreshold flags implausibly high Imperial MPG input.
	// Exceeding it is a soft warning, not a hard rejection.
	SuspiciousMPGThreshold = 150.0
)

// busLbsPerPassengerMile is the fixed per-person emission rate for the
// Bus vehicle type: diesel factor over vehicle MPG over passenger count.
const busLbsPerPassengerMile = DieselLbsCO2PerGallon / BusMPG / BusPassengers
