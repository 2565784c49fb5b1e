package impact

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatMass renders an emission figure with thousand separators, two
// decimals and its unit, e.g. "7,754.78 lbs".
func FormatMass(v float64, unit string) string {
	return formatFixed(v, 2) + " " + unit
}

// FormatCredits renders a carbon-credit count with two decimals,
// e.g. "3.52 credits". Singular below the plural threshold.
func FormatCredits(credits float64) string {
	label := "credits"
	if formatFixed(credits, 2) == "1.00" {
		label = "credit"
	}
	return formatFixed(credits, 2) + " " + label
}

// FormatTrees renders a tree-equivalent count rounded to the nearest
// whole tree, with large-number scaling, e.g. "90 urban trees".
func FormatTrees(trees float64) string {
	if trees >= LargeNumberThreshold {
		return formatLarge(trees) + " urban trees"
	}

	n := int64(math.Round(trees))
	label := "urban trees"
	if n == 1 {
		label = "urban tree"
	}
	return printer.Sprintf("%d", n) + " " + label
}

// formatFixed formats v to the given precision with thousand separators
// in the integer part.
func formatFixed(v float64, precision int) string {
	multiplier := math.Pow(10, float64(precision))
	rounded := math.Round(v*multiplier) / multiplier

	formatted := fmt.Sprintf("%.*f", precision, rounded)

	intPart, decPart, found := strings.Cut(formatted, ".")
	whole, err := parseInt(intPart)
	if err != nil {
		return formatted
	}

	if !found {
		return printer.Sprintf("%d", whole)
	}
	return printer.Sprintf("%d", whole) + "." + decPart
}

// formatLarge abbreviates million/billion scale values.
func formatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
}

// parseInt parses a plain decimal integer string, handling a sign.
func parseInt(s string) (int64, error) {
	var n int64
	negative := false

	for i, c := range s {
		if i == 0 && c == '-' {
			negative = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid character: %c", c)
		}
		n = n*10 + int64(c-'0')
	}

	if negative {
		n = -n
	}
	return n, nil
}
