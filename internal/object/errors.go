package object

import "errors"

// Errors returned by range computations.
var (
	// ErrMotionExhausted indicates a boundary motion could not move the
	// requested count of units. Callers inside this package absorb it;
	// the position is treated as unchanged.
	ErrMotionExhausted = errors.New("motion exhausted")

	// ErrNoEnclosingDelimiter indicates no matching enclosing delimiter
	// pair was found within the requested nesting count. Propagated to
	// the caller; the selection is not altered.
	ErrNoEnclosingDelimiter = errors.New("no enclosing delimiter")
)
