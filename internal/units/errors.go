package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrZeroEfficiency indicates an MPG/L-per-100km conversion at zero,
	// where the reciprocal relation is undefined.
	ErrZeroEfficiency = constError("efficiency conversion undefined at zero")

	// ErrUnknownSystem indicates an unrecognized unit-system name.
	ErrUnknownSystem = constError("unknown unit system")
)
