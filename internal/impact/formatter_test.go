package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMass(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		unit string
		want string
	}{
		{name: "yearly lbs", v: 7754.782, unit: "lbs", want: "7,754.78 lbs"},
		{name: "daily kg", v: 13.53, unit: "kg", want: "13.53 kg"},
		{name: "small", v: 0.37, unit: "lbs", want: "0.37 lbs"},
		{name: "rounds up", v: 149.1349, unit: "lbs", want: "149.13 lbs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMass(tt.v, tt.unit))
		})
	}
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "3.52 credits", FormatCredits(3.5175))
	assert.Equal(t, "1.00 credit", FormatCredits(1.0))
	assert.Equal(t, "0.00 credits", FormatCredits(0))
}

func TestFormatTrees(t *testing.T) {
	assert.Equal(t, "90 urban trees", FormatTrees(89.994))
	assert.Equal(t, "1 urban tree", FormatTrees(1.2))
	assert.Equal(t, "18,248 urban trees", FormatTrees(18248.4))
	assert.Equal(t, "~1.5 million urban trees", FormatTrees(1_500_000))
	assert.Equal(t, "~2.0 billion urban trees", FormatTrees(2_000_000_000))
}
