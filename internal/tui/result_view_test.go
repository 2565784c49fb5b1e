package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commutrace/commutrace/internal/engine"
	"github.com/commutrace/commutrace/internal/impact"
)

func TestRenderResult(t *testing.T) {
	result := engine.Result{
		PerDay:         29.83,
		PerWeek:        149.13,
		PerYear:        7754.78,
		Unit:           "lbs",
		VehicleKey:     "SUV",
		DistanceMiles:  35,
		Efficiency:     23,
		EfficiencyUnit: "mpg",
	}
	summary := impact.Summary{
		CarbonCredits: 3.52,
		UrbanTrees:    90,
		Level:         impact.Moderate,
	}

	out := RenderResult(result, summary)

	assert.Contains(t, out, "SUV")
	assert.Contains(t, out, "29.83 lbs")
	assert.Contains(t, out, "149.13 lbs")
	assert.Contains(t, out, "7,754.78 lbs")
	assert.Contains(t, out, "Moderate")
	assert.Contains(t, out, "3.52 credits")
	assert.Contains(t, out, "90 urban trees")
}

func TestRenderImpactLevel(t *testing.T) {
	for _, level := range []impact.Level{impact.Low, impact.Moderate, impact.High} {
		assert.Contains(t, RenderImpactLevel(level), level.String())
	}
}
