package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewPoint is like [Pt] but reports an error if either coordinate is NaN.
func NewPoint(x, y float64) (Point, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Point{}, errors.Wrapf(ErrInvalidCoordinate, "point (%g, %g)", x, y)
	}
	return Pt(x, y), nil
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

// Coords returns the point's coordinates as an array.
func (pt Point) Coords() [2]float64 {
	return [2]float64{pt.X, pt.Y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Equal reports whether pt and o have exactly the same coordinates.
func (pt Point) Equal(o Point) bool {
	return pt.X == o.X && pt.Y == o.Y
}

// Add sums the coordinates of two points.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Translate displaces the point by v.
func (pt Point) Translate(v Vector) Point {
	x, y := v.XY()
	return Point{
		X: pt.X + x,
		Y: pt.Y + y,
	}
}

// Sub computes pt−o, the vector from o to pt.
// To subtract a vector from pt, use SubVec.
func (pt Point) Sub(o Point) Vector {
	return Vec(pt.X-o.X, pt.Y-o.Y)
}

// SubVec displaces the point by the negation of v.
func (pt Point) SubVec(v Vector) Point {
	x, y := v.XY()
	return Point{
		X: pt.X - x,
		Y: pt.Y - y,
	}
}

// Negate returns a new point with the signs of x and y flipped.
func (pt Point) Negate() Point {
	return Point{
		X: -pt.X,
		Y: -pt.Y,
	}
}

// Mul scales both coordinates by f. Scaling by zero returns the origin.
func (pt Point) Mul(f float64) Point {
	if f == 0 {
		return Point{}
	}
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

// Div divides both coordinates by f. It returns [ErrDivideByZero] if f is
// zero.
func (pt Point) Div(f float64) (Point, error) {
	if f == 0 {
		return Point{}, errors.Wrapf(ErrDivideByZero, "dividing point %s", pt)
	}
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}, nil
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Length()
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
