package units

import "strings"

// System is the global display unit system: Imperial (miles, lbs) or
// Metric (km, kg). It is a single user preference persisted across
// sessions.
type System int

const (
	// Imperial uses miles for distance, MPG for efficiency, lbs for mass.
	Imperial System = iota

	// Metric uses kilometers, liters-per-100km, and kilograms.
	Metric
)

// String returns the canonical lowercase name used in config files
// and CLI flags.
func (s System) String() string {
	if s == Metric {
		return "metric"
	}
	return "imperial"
}

// MassUnit returns the mass unit label for the system ("lbs" or "kg").
func (s System) MassUnit() string {
	if s == Metric {
		return "kg"
	}
	return "lbs"
}

// DistanceUnit returns the distance unit label ("mi" or "km").
func (s System) DistanceUnit() string {
	if s == Metric {
		return "km"
	}
	return "mi"
}

// EfficiencyUnit returns the combustion efficiency unit label
// ("mpg" or "l/100km").
func (s System) EfficiencyUnit() string {
	if s == Metric {
		return "l/100km"
	}
	return "mpg"
}

// ParseSystem parses a unit-system name. Matching is case-insensitive
// and accepts the canonical names plus common short forms.
func ParseSystem(v string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "imperial", "us":
		return Imperial, nil
	case "metric", "si":
		return Metric, nil
	default:
		return Imperial, ErrUnknownSystem
	}
}
