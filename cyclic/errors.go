package cyclic

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a single index can't be mapped to an
	// element: the list is empty, or a negative index reaches past the
	// front of the list.
	ErrOutOfRange = errors.New("index out of range")

	// ErrZeroStep is returned for spans with a step of zero.
	ErrZeroStep = errors.New("span step cannot be zero")

	// ErrLengthMismatch is returned when assigning to a stepped span with a
	// different number of values than the span addresses.
	ErrLengthMismatch = errors.New("length mismatch")
)
