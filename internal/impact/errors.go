package impact

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNegativeEmissions indicates a negative emission figure.
	ErrNegativeEmissions = constError("negative emissions value")

	// ErrCalculationOverflow indicates a value too large to derive
	// metrics from safely.
	ErrCalculationOverflow = constError("calculation overflow")
)
