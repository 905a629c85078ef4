package starward

import (
	"math"

	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/unit"
)

// photometricParams holds the magnitude law coefficients of a planet and its
// equatorial diameter at unit distance.
type photometricParams struct {
	V0     float64 // magnitude at 1 AU from Sun and Earth, full phase
	c1, c2 float64 // phase coefficients, per degree and per degree squared
	d1AU   float64 // apparent equatorial diameter at Δ = 1 AU, arcsec
}

// phaseAngle returns the Sun-planet-Earth angle by the law of cosines, with
// r the Sun distance of the planet, R the Sun distance of the Earth and Δ
// the Earth distance of the planet, all in AU. Rounding can push the cosine
// just past ±1 for near-conjunction geometry; it is pulled back silently.
func phaseAngle(r, R, Δ float64) unit.Angle {
	cosi, _ := clamp((r*r+Δ*Δ-R*R)/(2*r*Δ), -1, 1)
	return unit.Angle(math.Acos(cosi))
}

// apparentMagnitude evaluates V = V0 + 5 log10(rΔ) + c1 i + c2 i² with the
// phase angle i in degrees.
func apparentMagnitude(ph photometricParams, r, Δ float64, i unit.Angle) float64 {
	d := i.Deg()
	return ph.V0 + 5*math.Log10(r*Δ) + ph.c1*d + ph.c2*d*d
}

// angularDiameter scales the planet's unit distance diameter by the Earth
// distance.
func angularDiameter(ph photometricParams, Δ float64) unit.Angle {
	return unit.AngleFromSec(ph.d1AU / Δ)
}

// elongation returns the angular separation between planet and Sun.
func elongation(α unit.RA, δ unit.Angle, sunα unit.RA, sunδ unit.Angle) unit.Angle {
	return angle.Sep(α.Angle(), δ, sunα.Angle(), sunδ)
}

/* Definitions */

// Magnitude coefficients after Meeus, diameters at unit distance. The Earth
// entry stays zero, it is never observed from itself.
var photometricTable = [...]photometricParams{
	Mercury: {-0.60, 0.0380, 0.000273, 6.74},
	Venus:   {-4.47, 0.0103, 0.000057, 16.92},
	Earth:   {},
	Mars:    {-1.52, 0.016, 0, 9.36},
	Jupiter: {-9.40, 0.005, 0, 196.94},
	Saturn:  {-8.88, 0.044, 0, 165.6},
	Uranus:  {-7.19, 0.002, 0, 70.48},
	Neptune: {-6.87, 0.001, 0, 68.30},
}
