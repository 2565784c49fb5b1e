package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownVehicle indicates a vehicle key not present in the catalog.
var ErrUnknownVehicle = constError("unknown vehicle type")
