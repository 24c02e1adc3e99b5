package seq

import "errors"

// Sentinel errors returned by sequence operations. All of them may arrive
// wrapped with extra context; test with [errors.Is].
var (
	// ErrNoElements is returned when an operation requires at least one
	// (matching) element and the traversal found none.
	ErrNoElements = errors.New("seq: sequence contains no elements")

	// ErrMultipleElements is returned by Single and SingleOrDefault when a
	// second matching element is found.
	ErrMultipleElements = errors.New("seq: sequence contains more than one matching element")

	// ErrIndexOutOfRange is returned when a position is negative or beyond
	// the end of the sequence.
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrNegativeCount is returned by Range and Repeat for a negative count.
	ErrNegativeCount = errors.New("seq: count must not be negative")

	// ErrOverflow is returned when a running sum or count leaves the
	// representable integer range, or when a Range would.
	ErrOverflow = errors.New("seq: arithmetic overflow")

	// ErrInvalidCast is returned during traversal of a Cast or Convert
	// result, at the exact element that cannot be converted.
	ErrInvalidCast = errors.New("seq: element cannot be cast to the requested type")
)
