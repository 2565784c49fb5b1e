// Package catalog holds the static vehicle catalog.
//
// Each profile maps a stable vehicle key to a default efficiency figure
// and a display description. Efficiency is kept in a single unit space
// internally (gallons-of-gasoline-equivalent per mile, expressed as MPG
// for combustion vehicles and MPGe for electric-equivalent ones)
// regardless of the active display unit system.
package catalog

import "fmt"

// Category classifies a vehicle for formula dispatch.
type Category int

const (
	// Combustion vehicles burn gasoline; efficiency is user-editable MPG.
	Combustion Category = iota

	// ElectricEquivalent vehicles are rated in MPGe; the catalog default
	// always applies and user efficiency input is ignored.
	ElectricEquivalent

	// SharedTransit vehicles use a fixed per-passenger emission rate;
	// efficiency input is ignored entirely.
	SharedTransit
)

// String returns a human-readable representation of the Category.
func (c Category) String() string {
	switch c {
	case Combustion:
		return "Combustion"
	case ElectricEquivalent:
		return "ElectricEquivalent"
	case SharedTransit:
		return "SharedTransit"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// VehicleProfile is a static, immutable catalog entry.
type VehicleProfile struct {
	// Key is the unique, stable identifier stored in calculation records.
	Key string

	// Category selects the emission formula branch.
	Category Category

	// DefaultEfficiency is MPG for combustion vehicles and MPGe for
	// electric-equivalent ones. Always > 0. Zero for shared transit,
	// whose rate is a fixed constant independent of this field.
	DefaultEfficiency float64

	// Description is display text with no role in calculation.
	Description string
}

// Vehicle keys. Stored records reference these, so they are stable
// across releases.
const (
	KeySUV        = "SUV"
	KeySedan      = "Sedan"
	KeyTruck      = "Truck"
	KeyHatchback  = "Hatchback"
	KeyMinivan    = "Minivan"
	KeyMotorcycle = "Motorcycle"
	KeyEBike      = "E-bike"
	KeySubway     = "Subway"
	KeyBus        = "Bus"
)

// profiles is the catalog in stable display order.
//
//nolint:gochecknoglobals // Static lookup table.
var profiles = []VehicleProfile{
	{Key: KeySUV, Category: Combustion, DefaultEfficiency: 23, Description: "Sport utility vehicle, average 23 MPG"},
	{Key: KeySedan, Category: Combustion, DefaultEfficiency: 32, Description: "Mid-size sedan, average 32 MPG"},
	{Key: KeyTruck, Category: Combustion, DefaultEfficiency: 17, Description: "Pickup truck, average 17 MPG"},
	{Key: KeyHatchback, Category: Combustion, DefaultEfficiency: 35, Description: "Compact hatchback, average 35 MPG"},
	{Key: KeyMinivan, Category: Combustion, DefaultEfficiency: 36, Description: "Minivan, average 36 MPG"},
	{Key: KeyMotorcycle, Category: Combustion, DefaultEfficiency: 44, Description: "Motorcycle, average 44 MPG"},
	{Key: KeyEBike, Category: ElectricEquivalent, DefaultEfficiency: 842, Description: "Electric bicycle, 842 MPGe"},
	{Key: KeySubway, Category: ElectricEquivalent, DefaultEfficiency: 114, Description: "Subway, 114 MPGe per passenger"},
	{Key: KeyBus, Category: SharedTransit, Description: "Transit bus, diesel, half occupancy (15 passengers)"},
}

// index maps vehicle keys to their catalog position.
//
//nolint:gochecknoglobals // Derived from the static profiles table.
var index = buildIndex()

func buildIndex() map[string]int {
	m := make(map[string]int, len(profiles))
	for i, p := range profiles {
		m[p.Key] = i
	}
	return m
}

// Lookup resolves a vehicle key to its profile.
// Returns ErrUnknownVehicle for keys not in the catalog; callers
// re-displaying historical records are expected to fall back to the
// literal stored string rather than fail.
func Lookup(key string) (VehicleProfile, error) {
	i, ok := index[key]
	if !ok {
		return VehicleProfile{}, ErrUnknownVehicle
	}
	return profiles[i], nil
}

// Profiles returns the full catalog in stable display order.
// The returned slice is a copy; mutating it does not affect the catalog.
func Profiles() []VehicleProfile {
	out := make([]VehicleProfile, len(profiles))
	copy(out, profiles)
	return out
}

// EfficiencyEditable reports whether the user may override the default
// efficiency for the given profile. Only combustion vehicles accept an
// override; E-bike, Subway and Bus always use their fixed figures.
func EfficiencyEditable(p VehicleProfile) bool {
	return p.Category == Combustion
}
