package impact

// Comparison constants.
const (
	// KgPerCarbonCredit is the mass of one carbon credit: 1 metric ton.
	KgPerCarbonCredit = 1000.0

	// LbsPerKg normalizes yearly lbs figures to kg for credit counting.
	LbsPerKg = 2204.62 / 1000.0

	// TreeOffsetLbsPerYear is the annual CO₂ absorption assigned to one
	// urban tree under Imperial display units.
	TreeOffsetLbsPerYear = 86.17

	// TreeOffsetKgPerYear is the independently calibrated Metric
	// constant. It is deliberately NOT derived from the lbs figure by
	// unit conversion; the published values do not match the lbs/kg
	// factor exactly, and both are hardcoded as given.
	TreeOffsetKgPerYear = 39.14
)

// Impact level thresholds, applied to the per-day figure in the active
// display unit. The same raw thresholds apply under lbs and kg, so the
// severity scale is unit-dependent. Known quirk, preserved as specified.
const (
	// LowDailyThreshold is the upper bound (exclusive) of Low impact.
	LowDailyThreshold = 10.0

	// ModerateDailyThreshold is the upper bound (exclusive) of Moderate.
	ModerateDailyThreshold = 50.0
)

// Display thresholds for formatted output.
const (
	// LargeNumberThreshold is where abbreviated "~X.X million" display starts.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is where "~X.X billion" display starts.
	BillionThreshold = 1_000_000_000
)
