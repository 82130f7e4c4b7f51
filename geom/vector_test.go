package geom

import (
	"errors"
	"math"
	"testing"
)

func TestVectorConstruction(t *testing.T) {
	v := Vec(2, 3)
	if k := v.Kind(); k != Cartesian {
		t.Errorf("got kind %v, want %v", k, Cartesian)
	}
	if x, y := v.Splat(); x != 2 || y != 3 {
		t.Errorf("got ⟨%g, %g⟩, want ⟨2, 3⟩", x, y)
	}

	z := VecPolar(2, 3)
	if k := z.Kind(); k != Polar {
		t.Errorf("got kind %v, want %v", k, Polar)
	}
	if r, th := z.Splat(); r != 2 || th != 3 {
		t.Errorf("got ⟨%g, %g rad⟩, want ⟨2, 3 rad⟩", r, th)
	}

	// The zero vector has a single polar encoding.
	for _, th := range []float64{0, 3, -1, 100} {
		if r, th := VecPolar(0, th).Splat(); r != 0 || th != 0 {
			t.Errorf("got ⟨%g, %g rad⟩, want ⟨0, 0 rad⟩", r, th)
		}
	}

	if _, th := VecPolar(1, 3.5*math.Pi).Splat(); th != 1.5*math.Pi {
		t.Errorf("got angle %g, want %g", th, 1.5*math.Pi)
	}
	if _, th := VecPolar(1, -math.Pi/2).Splat(); th != 1.5*math.Pi {
		t.Errorf("got angle %g, want %g", th, 1.5*math.Pi)
	}

	var zero Vector
	diff(t, zero, Vec(0, 0))
	if zero.Kind() != Cartesian {
		t.Errorf("zero value has kind %v, want %v", zero.Kind(), Cartesian)
	}
}

func TestVectorCheckedConstruction(t *testing.T) {
	if _, err := NewVec(math.NaN(), 0); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCoordinate)
	}
	if _, err := NewPolar(-1, 0); !errors.Is(err, ErrNegativeMagnitude) {
		t.Errorf("got error %v, want %v", err, ErrNegativeMagnitude)
	}
	if _, err := NewPolar(1, math.Inf(-1)); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCoordinate)
	}
	v, err := NewPolar(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, v, VecPolar(2, 3))

	defer func() {
		if recover() == nil {
			t.Error("VecPolar with a negative magnitude didn't panic")
		}
	}()
	VecPolar(-1, 0)
}

func TestVectorEqual(t *testing.T) {
	v := Vec(2, 3)
	if !v.Equal(Vec(2, 3)) {
		t.Errorf("%v != %v", v, Vec(2, 3))
	}
	if v.Equal(VecPolar(2, 3)) {
		t.Errorf("%v == %v", v, VecPolar(2, 3))
	}
	// The zero vector compares equal across encodings.
	if !Vec(0, 0).Equal(VecPolar(0, 1)) || !VecPolar(0, 1).Equal(Vec(0, 0)) {
		t.Error("zero vectors of different encodings aren't equal")
	}
}

func TestVectorLength(t *testing.T) {
	for _, tt := range []struct {
		v    Vector
		want float64
	}{
		{Vec(2, 3), math.Sqrt(13)},
		{Vec(3, 4), 5},
		{VecPolar(2, 3), 2},
	} {
		if got := tt.v.Length(); got != tt.want {
			t.Errorf("%v: got length %g, want %g", tt.v, got, tt.want)
		}
	}
}

func TestVectorConversion(t *testing.T) {
	v := Vec(2, 3)
	if v.ToCartesian() != v {
		t.Errorf("ToCartesian changed a cartesian vector")
	}
	diff(t, v.ToPolar(), VecPolar(v.Length(), math.Atan2(3, 2)))
	diff(t, v.ToPolar().ToCartesian(), v, vectorComparer)

	w := VecPolar(2, 3)
	if w.ToPolar() != w {
		t.Errorf("ToPolar changed a polar vector")
	}
	diff(t, w.ToCartesian(), Vec(2*math.Cos(3), 2*math.Sin(3)))

	x, y := w.XY()
	if x != 2*math.Cos(3) || y != 2*math.Sin(3) {
		t.Errorf("got ⟨%g, %g⟩ from XY", x, y)
	}
	r, th := v.RT()
	if r != math.Sqrt(13) || th != math.Atan2(3, 2) {
		t.Errorf("got ⟨%g, %g rad⟩ from RT", r, th)
	}
}

func TestVectorNegate(t *testing.T) {
	diff(t, Vec(2, 3).Negate(), Vec(-2, -3))
	diff(t, VecPolar(2, 3).Negate(), VecPolar(2, math.Mod(3+math.Pi, 2*math.Pi)))
}

func TestVectorAdd(t *testing.T) {
	v := Vec(2, 3)
	diff(t, v.Add(Vec(4, 2)), Vec(6, 5))

	sum := VecPolar(2, 3).Add(VecPolar(5, 3))
	if sum.Kind() != Polar {
		t.Errorf("sum of aligned polar vectors has kind %v", sum.Kind())
	}
	diff(t, sum, VecPolar(7, 3))

	w := VecPolar(2, math.Pi)
	got := v.Add(w)
	if got.Kind() != Cartesian {
		t.Errorf("mixed sum has kind %v", got.Kind())
	}
	diff(t, got, Vec(0, 3), vectorComparer)
	diff(t, w.Add(v), Vec(0, 3), vectorComparer)
}

func TestVectorSub(t *testing.T) {
	v := Vec(2, 3)
	diff(t, v.Sub(Vec(4, 2)), Vec(-2, 1))

	// Subtracting the longer vector turns the result around.
	diff(t, VecPolar(2, 3).Sub(VecPolar(5, 3)), VecPolar(3, math.Mod(3+math.Pi, 2*math.Pi)))
	diff(t, VecPolar(5, 3).Sub(VecPolar(2, 3)), VecPolar(3, 3))
	diff(t, VecPolar(5, 3).Sub(VecPolar(5, 3)), VecPolar(0, 0))

	diff(t, v.Sub(VecPolar(2, math.Pi)), Vec(4, 3), vectorComparer)
}

func TestVectorMul(t *testing.T) {
	f := 0.4
	v := Vec(2, 3)
	diff(t, v.Mul(3), Vec(6, 9))
	diff(t, v.Mul(1), Vec(2, 3))
	diff(t, v.Mul(f), Vec(2*f, 3*f))
	diff(t, v.Mul(0), Vec(0, 0))

	w := VecPolar(2, math.Pi)
	diff(t, w.Mul(3), VecPolar(6, math.Pi))
	diff(t, w.Mul(1), VecPolar(2, math.Pi))
	diff(t, w.Mul(f), VecPolar(0.8, math.Pi))
	diff(t, w.Mul(0), VecPolar(0, 0))
	if k := w.Mul(0).Kind(); k != Polar {
		t.Errorf("scaling by zero changed kind to %v", k)
	}
	if !w.Mul(0).Equal(Vec(0, 0)) {
		t.Errorf("%v != %v", w.Mul(0), Vec(0, 0))
	}

	// Negative factors turn polar vectors around instead of producing a
	// negative magnitude.
	diff(t, VecPolar(2, math.Pi/2).Mul(-1), VecPolar(2, 3*math.Pi/2))
	diff(t, VecPolar(2, math.Pi/2).Mul(-1).ToCartesian(), Vec(0, -2), vectorComparer)
}

func TestVectorDiv(t *testing.T) {
	f := 0.4
	for _, tt := range []struct {
		v    Vector
		f    float64
		want Vector
	}{
		{Vec(2, 3), 3, Vec(2.0/3.0, 1)},
		{Vec(2, 3), 1, Vec(2, 3)},
		{Vec(2, 3), f, Vec(2/f, 3/f)},
		{VecPolar(2, math.Pi), 3, VecPolar(2.0/3.0, math.Pi)},
		{VecPolar(2, math.Pi), 1, VecPolar(2, math.Pi)},
		{VecPolar(2, math.Pi), f, VecPolar(2/f, math.Pi)},
		{VecPolar(2, math.Pi), -2, VecPolar(1, 0)},
	} {
		got, err := tt.v.Div(tt.f)
		if err != nil {
			t.Fatalf("dividing %v by %g: %s", tt.v, tt.f, err)
		}
		diff(t, got, tt.want)
	}

	for _, v := range []Vector{Vec(2, 3), VecPolar(2, 3)} {
		if _, err := v.Div(0); !errors.Is(err, ErrDivideByZero) {
			t.Errorf("dividing %v by zero: got error %v, want %v", v, err, ErrDivideByZero)
		}
	}
}

func TestVectorAngleWith(t *testing.T) {
	v := Vec(2, 2)
	w := VecPolar(2, math.Pi)
	z := VecPolar(2, math.Pi+2)
	u := VecPolar(2, 3.5*math.Pi)
	for _, tt := range []struct {
		a, b Vector
		want float64
	}{
		{v, w, 0.75 * math.Pi},
		{w, v, 0.75 * math.Pi},
		{w, z, 2},
		{z, w, 2},
		{w, u, 0.5 * math.Pi},
		{v, v, 0},
	} {
		if got := tt.a.AngleWith(tt.b); got != tt.want {
			t.Errorf("angle between %v and %v: got %g, want %g", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVectorUnit(t *testing.T) {
	diff(t, Vec(3, 3).Unit(), Vec(1/math.Sqrt2, 1/math.Sqrt2), vectorComparer)
	diff(t, VecPolar(6, math.Pi/2).Unit(), VecPolar(1, math.Pi/2))

	// The zero vector's unit depends on the encoding: the cartesian zero
	// vector is returned unchanged, while the polar one has angle 0.
	diff(t, Vec(0, 0).Unit(), Vec(0, 0))
	diff(t, VecPolar(0, 0).Unit(), VecPolar(1, 0))
}

func TestVectorRotate(t *testing.T) {
	v := Vec(3, 4)
	diff(t, v.Rotate(0), Vec(3, 4))
	diff(t, v.Rotate(math.Pi/2), Vec(-4, 3))
	diff(t, v.Rotate(math.Pi), Vec(-3, -4))
	diff(t, v.Rotate(3*math.Pi/2), Vec(4, -3))
	diff(t, v.Rotate(-math.Pi/2), Vec(4, -3))
	diff(t, v.Rotate(2*math.Pi), Vec(3, 4))

	got := v.Rotate(math.Pi / 4)
	if got.Kind() != Cartesian {
		t.Errorf("rotating a cartesian vector produced kind %v", got.Kind())
	}
	diff(t, got, VecPolar(v.Length(), math.Pi/4+math.Atan2(4, 3)), vectorComparer)

	w := VecPolar(3, math.Pi)
	diff(t, w.Rotate(0), VecPolar(3, math.Pi))
	diff(t, w.Rotate(3), VecPolar(3, math.Mod(math.Pi+3, 2*math.Pi)))
}

func TestVectorProducts(t *testing.T) {
	v := Vec(2, 3)
	w := VecPolar(2, math.Pi/2)
	if d := v.Dot(Vec(4, -1)); d != 5 {
		t.Errorf("got dot product %g, want 5", d)
	}
	if c := v.Cross(Vec(4, -1)); c != -14 {
		t.Errorf("got cross product %g, want -14", c)
	}
	if d := v.Dot(w); math.Abs(d-6) > 1e-9 {
		t.Errorf("got dot product %g, want 6", d)
	}
}

func TestVectorString(t *testing.T) {
	for _, tt := range []struct {
		v    Vector
		want string
	}{
		{Vec(2, -3.5), "⟨2, -3.5⟩"},
		{VecPolar(2, 3), "⟨2, 3 rad⟩"},
	} {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
