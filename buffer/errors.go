package buffer

import "errors"

// Sentinel errors returned by Buffer operations.
var (
	// ErrIndexOutOfRange is returned by RemoveAt when the index is outside
	// [0, Len()-1].
	ErrIndexOutOfRange = errors.New("buffer: index out of range")
)
