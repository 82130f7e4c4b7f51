package geom

import "fmt"

// Segment is a closed line segment from A to B.
type Segment struct {
	// The segment's origin.
	A Point
	// The segment's destination.
	B Point
}

// Seg returns the segment from a to b.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s->%s", s.A, s.B)
}

// Equal reports whether both segments have exactly the same endpoints, in the
// same order.
func (s Segment) Equal(o Segment) bool {
	return s.A.Equal(o.A) && s.B.Equal(o.B)
}

// Length returns the distance between the segment's endpoints.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Eval returns the point at parameter t along the segment, with t = 0 at A and
// t = 1 at B.
func (s Segment) Eval(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// Reverse returns the segment from B to A.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// BoundingBox returns the smallest axis-aligned box containing the segment.
func (s Segment) BoundingBox() Rect {
	return Bounds(s.A, s.B)
}

// Intersection computes the point where two segments cross, if any.
//
// Parallel segments never intersect, even if they overlap.
func (s Segment) Intersection(o Segment) (Point, bool) {
	if !s.BoundingBox().Overlaps(o.BoundingBox()) {
		return Point{}, false
	}
	x1, y1 := s.B.Sub(s.A).XY()
	d2 := o.B.Sub(o.A)
	x2, y2 := d2.XY()

	det := y1*x2 - x1*y2
	if det == 0 {
		return Point{}, false
	}
	// u = position on o
	u := (x1*(o.A.Y-s.A.Y) - y1*(o.A.X-s.A.X)) / det
	// t = position on s; at least one of x1 and y1 is non-zero.
	var t float64
	if x1 != 0 {
		t = (u*x2 + o.A.X - s.A.X) / x1
	} else {
		t = (u*y2 + o.A.Y - s.A.Y) / y1
	}
	if u >= 0 && u <= 1 && t >= 0 && t <= 1 {
		return o.A.Translate(d2.Mul(u)), true
	}
	return Point{}, false
}

// IntersectsWith reports whether the two segments cross.
func (s Segment) IntersectsWith(o Segment) bool {
	_, ok := s.Intersection(o)
	return ok
}
