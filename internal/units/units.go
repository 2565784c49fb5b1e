// Package units provides the unit conversions used throughout commutrace.
//
// All functions are pure and deterministic. No rounding is applied here;
// display rounding belongs to the caller, and the engine applies its own
// 2-decimal rounding as part of the stored-record contract.
package units

// Conversion constants.
const (
	// KmPerMile converts miles to kilometers.
	KmPerMile = 1.60934

	// MPGConversionFactor relates miles-per-gallon and liters-per-100km.
	// The relation is self-inverse: applying it twice returns the input.
	MPGConversionFactor = 235.214

	// KgPerLb converts pounds to kilograms.
	KgPerLb = 0.453592

	// LbsPerMetricTon converts pounds to metric tons when divided.
	LbsPerMetricTon = 2204.62
)

// MilesToKm converts a distance in miles to kilometers.
func MilesToKm(mi float64) float64 {
	return mi * KmPerMile
}

// KmToMiles converts a distance in kilometers to miles.
func KmToMiles(km float64) float64 {
	return km / KmPerMile
}

// MPGToLPer100Km converts miles-per-gallon to liters-per-100km.
//
// The conversion is undefined at mpg = 0; callers must validate
// efficiency before converting. Returns ErrZeroEfficiency in that case.
func MPGToLPer100Km(mpg float64) (float64, error) {
	if mpg == 0 {
		return 0, ErrZeroEfficiency
	}
	return MPGConversionFactor / mpg, nil
}

// LPer100KmToMPG converts liters-per-100km to miles-per-gallon.
// The relation is the same self-inverse division as MPGToLPer100Km.
func LPer100KmToMPG(lPer100 float64) (float64, error) {
	if lPer100 == 0 {
		return 0, ErrZeroEfficiency
	}
	return MPGConversionFactor / lPer100, nil
}

// LbsToKg converts a mass in pounds to kilograms.
func LbsToKg(lb float64) float64 {
	return lb * KgPerLb
}

// KgToLbs converts a mass in kilograms to pounds.
func KgToLbs(kg float64) float64 {
	return kg / KgPerLb
}
