package geom

import "math"

const tau = 2 * math.Pi

// NormalizeAngle maps an angle in radians to the equivalent angle in [0, 2π).
func NormalizeAngle(t float64) float64 {
	m := math.Mod(t, tau)
	if m < 0 {
		m += tau
	}
	if m == 0 || m >= tau {
		// Also turns -0 into 0.
		return 0
	}
	return m
}
