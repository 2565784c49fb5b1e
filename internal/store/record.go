package store

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/commutrace/commutrace/internal/engine"
)

// Record is one persisted calculation, created exactly once when a
// calculation completes and immutable thereafter. Units are recorded
// per-record because the global unit-system preference can change after
// creation.
type Record struct {
	// ID is a ULID derived from the creation timestamp.
	ID string `json:"id"`

	// Timestamp is the ISO-8601 creation time.
	Timestamp time.Time `json:"timestamp"`

	// VehicleType is the catalog key active at calculation time. Later
	// catalog changes are not retroactively applied; unresolved keys are
	// displayed as the literal stored string.
	VehicleType string `json:"vehicle_type"`

	// DistanceMiles is the input distance normalized to miles regardless
	// of the unit system active at calculation time, keeping historical
	// records comparable across unit-system toggles.
	DistanceMiles float64 `json:"distance_miles"`

	// Efficiency and EfficiencyUnit hold the effective efficiency value
	// and the unit it was expressed in ("mpg", "l/100km" or "mpge").
	Efficiency     float64 `json:"efficiency"`
	EfficiencyUnit string  `json:"efficiency_unit,omitempty"`

	// EmissionsPerDay/Week/Year carry the rounded computed outputs in
	// EmissionsUnit ("lbs" or "kg").
	EmissionsPerDay  float64 `json:"emissions_per_day"`
	EmissionsPerWeek float64 `json:"emissions_per_week"`
	EmissionsPerYear float64 `json:"emissions_per_year"`
	EmissionsUnit    string  `json:"emissions_unit,omitempty"`

	// AssumedLegacyUnits is set on load for records that predate the
	// per-record unit tags and are displayed with assumed Imperial
	// units. Never persisted.
	AssumedLegacyUnits bool `json:"-"`
}

// NewRecord builds a Record from a computed result at the given
// creation time.
func NewRecord(result engine.Result, now time.Time) Record {
	return Record{
		ID:               newRecordID(now),
		Timestamp:        now.UTC(),
		VehicleType:      result.VehicleKey,
		DistanceMiles:    result.DistanceMiles,
		Efficiency:       result.Efficiency,
		EfficiencyUnit:   result.EfficiencyUnit,
		EmissionsPerDay:  result.PerDay,
		EmissionsPerWeek: result.PerWeek,
		EmissionsPerYear: result.PerYear,
		EmissionsUnit:    result.Unit,
	}
}

// newRecordID derives a unique record ID from the creation timestamp.
func newRecordID(now time.Time) string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0) //nolint:gosec // Non-cryptographic ID entropy.
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// upgradeLegacy fills in the unit tags for records written before the
// tags existed. Such records are displayed with assumed legacy
// (Imperial) units rather than rejected or rewritten in storage.
func upgradeLegacy(r Record) Record {
	if r.EfficiencyUnit == "" {
		r.EfficiencyUnit = "mpg"
		r.AssumedLegacyUnits = true
	}
	if r.EmissionsUnit == "" {
		r.EmissionsUnit = "lbs"
		r.AssumedLegacyUnits = true
	}
	return r
}
