package geom

import "github.com/pkg/errors"

var (
	// ErrDivideByZero is returned when dividing a point or vector by zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrInvalidCoordinate is returned by the checked constructors when a
	// coordinate is NaN, or when a polar angle is infinite.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrNegativeMagnitude is returned by [NewPolar] for a negative magnitude.
	ErrNegativeMagnitude = errors.New("negative magnitude")
)
