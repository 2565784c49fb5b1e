package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commutrace/commutrace/internal/catalog"
	"github.com/commutrace/commutrace/internal/units"
)

func TestVehiclesListsCatalog(t *testing.T) {
	out, err := execute(t, "vehicles")
	require.NoError(t, err)

	for _, p := range catalog.Profiles() {
		assert.Contains(t, out, p.Key)
	}
	assert.Contains(t, out, "23 MPG")
	assert.Contains(t, out, "842 MPGe")
	assert.Contains(t, out, "fixed per-passenger")
}

func TestFormatEfficiency(t *testing.T) {
	suv, err := catalog.Lookup("SUV")
	require.NoError(t, err)
	bus, err := catalog.Lookup("Bus")
	require.NoError(t, err)
	ebike, err := catalog.Lookup("E-bike")
	require.NoError(t, err)

	tests := []struct {
		name    string
		profile catalog.VehicleProfile
		sys     units.System
		want    string
	}{
		{name: "combustion imperial", profile: suv, sys: units.Imperial, want: "23 MPG"},
		{name: "combustion metric", profile: suv, sys: units.Metric, want: "10.2 L/100km"},
		{name: "transit either system", profile: bus, sys: units.Metric, want: "fixed per-passenger"},
		{name: "electric stays MPGe", profile: ebike, sys: units.Metric, want: "842 MPGe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatEfficiency(tt.profile, tt.sys))
		})
	}
}
