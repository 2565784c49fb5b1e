package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/commutrace/commutrace/internal/engine"
	"github.com/commutrace/commutrace/internal/impact"
)

// resultBoxWidth is the inner width of the rendered result card.
const resultBoxWidth = 44

// RenderResult renders a boxed summary of a computed result and its
// derived metrics.
func RenderResult(result engine.Result, summary impact.Summary) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Commute emissions: "+result.VehicleKey) + "\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", label)),
			valueStyle.Render(value)))
	}

	row("Per day", impact.FormatMass(result.PerDay, result.Unit))
	row("Per week", impact.FormatMass(result.PerWeek, result.Unit))
	row("Per year", impact.FormatMass(result.PerYear, result.Unit))
	b.WriteString("\n")
	row("Impact", RenderImpactLevel(summary.Level))
	row("Offset cost", impact.FormatCredits(summary.CarbonCredits))
	row("Tree-years", impact.FormatTrees(summary.UrbanTrees))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1).
		Width(resultBoxWidth)

	return boxStyle.Render(b.String())
}

// RenderImpactLevel renders an impact level in its severity color.
func RenderImpactLevel(level impact.Level) string {
	var color lipgloss.Color
	switch level {
	case impact.Low:
		color = ColorOK
	case impact.Moderate:
		color = ColorWarning
	default:
		color = ColorDanger
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(level.String())
}
