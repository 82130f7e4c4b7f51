package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, got, want any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(got, want, opts...); d != "" {
		t.Error(d)
	}
}

// Comparers for results that are only exact up to rounding. Point and Vector
// have Equal methods, which cmp would otherwise prefer over EquateApprox.
var (
	pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
		return p1.Distance(p2) < 1e-9
	})
	vectorComparer = cmp.Comparer(func(v1, v2 Vector) bool {
		return v1.Sub(v2).Length() < 1e-9
	})
)
