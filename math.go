package starward

import (
	"math"

	"github.com/soniakeys/unit"
)

const deg2rad = math.Pi / 180

// norm returns the norm of a given vector which is supposed to be 3x1.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// clamp forces x into [lo, hi] and reports whether it had to be moved.
func clamp(x, lo, hi float64) (float64, bool) {
	if x < lo {
		return lo, true
	}
	if x > hi {
		return hi, true
	}
	return x, false
}

// wrap360 wraps an angle in degrees to [0, 360).
func wrap360(x float64) float64 {
	return unit.PMod(x, 360)
}
