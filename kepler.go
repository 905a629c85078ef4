package starward

import "math"

const (
	keplerTol     = 1e-12 // radians
	keplerMaxIter = 10
)

// solveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly via Newton-Raphson, seeded with E = M. All angles in radians.
// The boolean is false when the iteration cap was reached before the
// correction dropped below keplerTol, in which case E is only approximate.
func solveKepler(M, e float64) (float64, bool) {
	E := M
	for i := 0; i < keplerMaxIter; i++ {
		next := E + (M-E+e*math.Sin(E))/(1-e*math.Cos(E))
		if math.Abs(next-E) < keplerTol {
			return next, true
		}
		E = next
	}
	return E, false
}

// trueAnomaly converts the eccentric anomaly to the true anomaly using the
// half-angle form, which keeps the quadrant right for any E.
func trueAnomaly(E, e float64) float64 {
	sinν := math.Sqrt(1+e) * math.Sin(E/2)
	cosν := math.Sqrt(1-e) * math.Cos(E/2)
	return 2 * math.Atan2(sinν, cosν)
}

// radiusAU returns the orbital radius r = a(1 - e*cos(E)) in AU.
func radiusAU(a, e, E float64) float64 {
	return a * (1 - e*math.Cos(E))
}
