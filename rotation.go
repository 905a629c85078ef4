package starward

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) (o []float64) {
	vVec := mat.NewVecDense(len(v), v)
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	o = []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
	return
}

// perifocalToEcliptic returns the rotation from the orbital plane, X toward
// perihelion, to the heliocentric ecliptic frame: R3(-Ω) R1(-i) R3(-ω).
// All angles in radians.
func perifocalToEcliptic(ω, i, Ω float64) *mat.Dense {
	var a, b mat.Dense
	a.Mul(R3(-Ω), R1(-i))
	b.Mul(&a, R3(-ω))
	return &b
}

// eclipticToEquatorial rotates an ecliptic rectangular vector into the
// equatorial frame for the given obliquity ε in radians.
func eclipticToEquatorial(v []float64, ε float64) []float64 {
	return MxV33(R1(-ε), v)
}
