package store

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrKeyNotFound indicates no blob exists under the requested key.
	ErrKeyNotFound = constError("key not found")

	// ErrInvalidKey indicates an empty store key.
	ErrInvalidKey = constError("store key cannot be empty")

	// ErrEmptyDirectory indicates a FileKV with no directory configured.
	ErrEmptyDirectory = constError("store directory cannot be empty")
)
