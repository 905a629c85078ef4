package starward

import "github.com/soniakeys/unit"

// meanElements holds the J2000 mean orbital elements of a planet and their
// secular rates per Julian century. The fit is valid for 1800 AD through
// 2050 AD; outside that window the propagation degrades gracefully.
// Angles in degrees, semi-major axis in AU.
type meanElements struct {
	a0, aDot float64 // semi-major axis
	e0, eDot float64 // eccentricity
	i0, iDot float64 // inclination
	Ω0, ΩDot float64 // longitude of the ascending node
	ϖ0, ϖDot float64 // longitude of perihelion
	L0, LDot float64 // mean longitude
}

// at propagates the mean elements by T Julian centuries since J2000.0.
func (m meanElements) at(T float64) elements {
	return elements{
		a: m.a0 + m.aDot*T,
		e: m.e0 + m.eDot*T,
		i: m.i0 + m.iDot*T,
		Ω: m.Ω0 + m.ΩDot*T,
		ϖ: m.ϖ0 + m.ϖDot*T,
		L: m.L0 + m.LDot*T,
	}
}

// elements is an osculating element set at some epoch, angles in degrees.
type elements struct {
	a, e, i, Ω, ϖ, L float64
}

// meanAnomaly returns M = L - ϖ wrapped to [0, 360).
func (el elements) meanAnomaly() float64 {
	return unit.PMod(el.L-el.ϖ, 360)
}

/* Definitions */

// Keplerian elements and rates for the mean equinox and ecliptic of J2000,
// from the Standish fit to DE405 over 1800 AD - 2050 AD. The Earth entry is
// the Earth-Moon barycenter.
var meanElementTable = [...]meanElements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749, 48.33076593, -0.12534081, 77.45779628, 0.16047689, 252.25032350, 149472.67411175},
	Venus:   {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890, 76.67984255, -0.27769418, 131.60246718, 0.00268329, 181.97909950, 58517.81538729},
	Earth:   {1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668, 0.0, 0.0, 102.93768193, 0.32327364, 100.46457166, 35999.37244981},
	Mars:    {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131, 49.55953891, -0.29257343, -23.94362959, 0.44441088, -4.55343205, 19140.30268499},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714, 100.47390909, 0.20469106, 14.72847983, 0.21252668, 34.39644051, 3034.74612775},
	Saturn:  {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609, 113.66242448, -0.28867794, 92.59887831, -0.41897216, 49.95424423, 1222.49362201},
	Uranus:  {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939, 74.01692503, 0.04240589, 170.95427630, 0.40805281, 313.23810451, 428.48202785},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372, 131.78422574, -0.00508664, 44.96476227, -0.32241464, -55.12002969, 218.45945325},
}
