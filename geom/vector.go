package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Kind is the encoding of a [Vector].
type Kind uint8

const (
	// Cartesian vectors are stored as x and y components.
	Cartesian Kind = iota
	// Polar vectors are stored as a magnitude r ≥ 0 and an angle t ∈ [0, 2π).
	Polar
)

func (k Kind) String() string {
	switch k {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Vector is a planar vector in either cartesian or polar form.
//
// The zero value is the cartesian zero vector. Vectors are compared with
// [Vector.Equal]; the == operator additionally distinguishes encodings.
type Vector struct {
	kind Kind
	// (x, y) for Cartesian, (r, t) for Polar.
	a, b float64
}

// Vec returns the cartesian vector ⟨x, y⟩.
func Vec(x, y float64) Vector {
	return Vector{
		kind: Cartesian,
		a:    x,
		b:    y,
	}
}

// VecPolar returns the polar vector with magnitude r and angle t, in radians.
// The angle is normalized to [0, 2π), and set to 0 if r is 0.
//
// VecPolar panics if r is negative or NaN, or if t is NaN or infinite. Use
// [NewPolar] to validate untrusted input.
func VecPolar(r, t float64) Vector {
	if err := checkPolar(r, t); err != nil {
		panic(err)
	}
	return polar(r, t)
}

// NewVec is like [Vec] but reports an error if either component is NaN.
func NewVec(x, y float64) (Vector, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Vector{}, errors.Wrapf(ErrInvalidCoordinate, "vector ⟨%g, %g⟩", x, y)
	}
	return Vec(x, y), nil
}

// NewPolar is like [VecPolar] but reports an error instead of panicking.
func NewPolar(r, t float64) (Vector, error) {
	if err := checkPolar(r, t); err != nil {
		return Vector{}, err
	}
	return polar(r, t), nil
}

func checkPolar(r, t float64) error {
	if math.IsNaN(r) || math.IsNaN(t) || math.IsInf(t, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "polar vector ⟨%g, %g rad⟩", r, t)
	}
	if r < 0 {
		return errors.Wrapf(ErrNegativeMagnitude, "polar vector ⟨%g, %g rad⟩", r, t)
	}
	return nil
}

func polar(r, t float64) Vector {
	if r == 0 {
		return Vector{kind: Polar}
	}
	return Vector{
		kind: Polar,
		a:    r,
		b:    NormalizeAngle(t),
	}
}

// Kind returns the vector's encoding.
func (v Vector) Kind() Kind {
	return v.kind
}

// XY returns the vector's cartesian components, converting if necessary.
func (v Vector) XY() (x, y float64) {
	c := v.ToCartesian()
	return c.a, c.b
}

// RT returns the vector's magnitude and angle, converting if necessary.
func (v Vector) RT() (r, t float64) {
	p := v.ToPolar()
	return p.a, p.b
}

// Splat returns the vector's stored fields: x and y for cartesian vectors, r
// and t for polar ones.
func (v Vector) Splat() (float64, float64) {
	return v.a, v.b
}

func (v Vector) String() string {
	if v.kind == Polar {
		return fmt.Sprintf("⟨%g, %g rad⟩", v.a, v.b)
	}
	return fmt.Sprintf("⟨%g, %g⟩", v.a, v.b)
}

// ToCartesian returns the vector in cartesian form. Cartesian vectors are
// returned unchanged.
func (v Vector) ToCartesian() Vector {
	if v.kind == Cartesian {
		return v
	}
	return Vec(v.a*math.Cos(v.b), v.a*math.Sin(v.b))
}

// ToPolar returns the vector in polar form. Polar vectors are returned
// unchanged.
func (v Vector) ToPolar() Vector {
	if v.kind == Polar {
		return v
	}
	return polar(v.Length(), math.Atan2(v.b, v.a))
}

// Equal reports whether o, converted to v's encoding, has exactly the same
// fields as v.
func (v Vector) Equal(o Vector) bool {
	if v.kind == Polar {
		o = o.ToPolar()
	} else {
		o = o.ToCartesian()
	}
	return v.a == o.a && v.b == o.b
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	if v.kind == Polar {
		return v.a
	}
	return math.Sqrt(v.a*v.a + v.b*v.b)
}

// Negate returns the vector of the same magnitude pointing in the opposite
// direction.
func (v Vector) Negate() Vector {
	if v.kind == Polar {
		return polar(v.a, v.b+math.Pi)
	}
	return Vec(-v.a, -v.b)
}

// Add adds two vectors and returns the resulting vector.
//
// Two polar vectors with the same angle produce a polar vector. All other
// combinations produce a cartesian vector.
func (v Vector) Add(o Vector) Vector {
	if v.kind == Polar && o.kind == Polar && v.b == o.b {
		return polar(v.a+o.a, v.b)
	}
	x0, y0 := v.XY()
	x1, y1 := o.XY()
	return Vec(x0+x1, y0+y1)
}

// Sub subtracts o from v and returns the resulting vector.
//
// Two polar vectors with the same angle produce a polar vector, which points
// in the opposite direction if o is longer than v. All other combinations
// produce a cartesian vector.
func (v Vector) Sub(o Vector) Vector {
	if v.kind == Polar && o.kind == Polar && v.b == o.b {
		if v.a >= o.a {
			return polar(v.a-o.a, v.b)
		}
		return polar(o.a-v.a, v.b+math.Pi)
	}
	x0, y0 := v.XY()
	x1, y1 := o.XY()
	return Vec(x0-x1, y0-y1)
}

// Displace returns pt translated by v. It is the same as pt.Translate(v).
func (v Vector) Displace(pt Point) Point {
	return pt.Translate(v)
}

// Mul scales the vector by f, keeping its encoding.
//
// Scaling by zero returns the zero vector in the receiver's encoding, so that
// scaling a polar vector by zero yields ⟨0, 0 rad⟩ rather than ⟨0, 0⟩. The two
// compare equal, but differ in [Vector.Kind]. Scaling a polar vector by a
// negative factor turns it around, as its magnitude cannot be negative.
func (v Vector) Mul(f float64) Vector {
	if v.kind == Polar {
		if f == 0 {
			return Vector{kind: Polar}
		}
		if f < 0 {
			return polar(v.a*-f, v.b+math.Pi)
		}
		return polar(v.a*f, v.b)
	}
	if f == 0 {
		return Vec(0, 0)
	}
	return Vec(v.a*f, v.b*f)
}

// Div divides the vector by f, keeping its encoding. It returns
// [ErrDivideByZero] if f is zero.
func (v Vector) Div(f float64) (Vector, error) {
	if f == 0 {
		return Vector{}, errors.Wrapf(ErrDivideByZero, "dividing vector %s", v)
	}
	return v.div(f), nil
}

func (v Vector) div(f float64) Vector {
	if v.kind == Polar {
		if f < 0 {
			return polar(v.a/-f, v.b+math.Pi)
		}
		return polar(v.a/f, v.b)
	}
	return Vec(v.a/f, v.b/f)
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	x0, y0 := v.XY()
	x1, y1 := o.XY()
	return x0*x1 + y0*y1
}

// Cross returns the cross product of v and o.
func (v Vector) Cross(o Vector) float64 {
	x0, y0 := v.XY()
	x1, y1 := o.XY()
	return x0*y1 - y0*x1
}

// AngleWith returns the smallest angle between v and o, in radians. The result
// is in [0, π].
func (v Vector) AngleWith(o Vector) float64 {
	p := v.ToPolar()
	q := o.ToPolar()
	return min(NormalizeAngle(p.b-q.b), NormalizeAngle(q.b-p.b))
}

// Unit returns the vector of magnitude 1 with the same direction as v.
//
// The cartesian zero vector has no direction and is returned as is. The polar
// zero vector has angle 0 and thus produces ⟨1, 0 rad⟩.
func (v Vector) Unit() Vector {
	if v.kind == Polar {
		return polar(1, v.b)
	}
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.div(l)
}

// Rotate rotates the vector counter-clockwise by th radians, keeping its
// encoding.
//
// Cartesian vectors rotated by a multiple of π/2 are computed exactly, by
// swapping and negating components.
func (v Vector) Rotate(th float64) Vector {
	if v.kind == Polar {
		return polar(v.a, v.b+th)
	}
	switch NormalizeAngle(th) {
	case 0:
		return v
	case math.Pi / 2:
		return Vec(-v.b, v.a)
	case math.Pi:
		return v.Negate()
	case 3 * math.Pi / 2:
		return Vec(v.b, -v.a)
	default:
		return v.ToPolar().Rotate(th).ToCartesian()
	}
}

// IsInf reports whether at least one of the vector's fields is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(v.a, 0) || math.IsInf(v.b, 0)
}

// IsNaN reports whether at least one of the vector's fields is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.a) || math.IsNaN(v.b)
}
