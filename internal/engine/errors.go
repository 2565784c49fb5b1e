package engine

// constError is an immutable error type for sentinel errors.
// Sentinels are compared with errors.Is().
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidDistance indicates a distance that is not a positive
	// finite number.
	ErrInvalidDistance = constError("distance must be a number greater than zero")

	// ErrInvalidEfficiency indicates a combustion-vehicle efficiency
	// that is not a positive finite number.
	ErrInvalidEfficiency = constError("efficiency must be a number greater than zero")

	// ErrEfficiencySuspicious flags an Imperial efficiency above
	// SuspiciousMPGThreshold. This is a soft warning: callers may
	// proceed after an explicit override.
	ErrEfficiencySuspicious = constError("efficiency above 150 MPG looks suspicious")
)
