package geom

import "fmt"

// Rect is an axis-aligned box spanning from Min to Max, boundaries included.
type Rect struct {
	Min, Max Point
}

// Bounds returns the smallest box containing all of pts. It returns the zero
// Rect if pts is empty.
func Bounds(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, pt := range pts[1:] {
		r.Min = Pt(min(r.Min.X, pt.X), min(r.Min.Y, pt.Y))
		r.Max = Pt(max(r.Max.X, pt.X), max(r.Max.Y, pt.Y))
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s, %s]", r.Min, r.Max)
}

// Overlaps reports whether the two boxes share at least one point. Boxes that
// only touch along an edge or at a corner overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}
