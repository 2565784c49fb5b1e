package impact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commutrace/commutrace/internal/units"
)

func TestCarbonCredits(t *testing.T) {
	tests := []struct {
		name    string
		yearly  float64
		sys     units.System
		want    float64
		wantErr error
	}{
		{
			// One metric ton in lbs is exactly one credit.
			name:   "one ton imperial",
			yearly: 2204.62,
			sys:    units.Imperial,
			want:   1.00,
		},
		{
			name:   "one ton metric",
			yearly: 1000,
			sys:    units.Metric,
			want:   1.00,
		},
		{
			name:   "suv year imperial",
			yearly: 7754.78,
			sys:    units.Imperial,
			want:   3.5175,
		},
		{
			name:   "zero",
			yearly: 0,
			sys:    units.Imperial,
			want:   0,
		},
		{
			name:    "negative rejected",
			yearly:  -10,
			sys:     units.Metric,
			wantErr: ErrNegativeEmissions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CarbonCredits(tt.yearly, tt.sys)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestUrbanTrees(t *testing.T) {
	tests := []struct {
		name   string
		yearly float64
		sys    units.System
		want   float64
	}{
		{
			// One Imperial tree constant is exactly one tree.
			name:   "one tree imperial",
			yearly: 86.17,
			sys:    units.Imperial,
			want:   1,
		},
		{
			name:   "one tree metric",
			yearly: 39.14,
			sys:    units.Metric,
			want:   1,
		},
		{
			name:   "suv year imperial",
			yearly: 7754.78,
			sys:    units.Imperial,
			want:   89.994,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UrbanTrees(tt.yearly, tt.sys)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestTreeConstantsAreIndependent(t *testing.T) {
	// The Metric tree constant is calibrated independently; deriving it
	// from the lbs constant by unit conversion gives a different number.
	converted := units.LbsToKg(TreeOffsetLbsPerYear)
	assert.Greater(t, math.Abs(TreeOffsetKgPerYear-converted), 0.01)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		daily float64
		want  Level
	}{
		{name: "low", daily: 2.49, want: Low},
		{name: "just under low bound", daily: 9.99, want: Low},
		{name: "moderate lower edge", daily: 10, want: Moderate},
		{name: "moderate", daily: 29.83, want: Moderate},
		{name: "high lower edge", daily: 50, want: High},
		{name: "high", daily: 120.5, want: High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.daily))
		})
	}
}

func TestSummarize(t *testing.T) {
	got, err := Summarize(29.83, 7754.78, units.Imperial)
	require.NoError(t, err)

	assert.InDelta(t, 3.5175, got.CarbonCredits, 0.001)
	assert.InDelta(t, 89.994, got.UrbanTrees, 0.01)
	assert.Equal(t, Moderate, got.Level)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "Low", Low.String())
	assert.Equal(t, "Moderate", Moderate.String())
	assert.Equal(t, "High", High.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}
