package starward

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/solar"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// PlanetPosition gathers the apparent place and appearance of a planet as
// seen from the center of the Earth at one instant.
type PlanetPosition struct {
	Planet Planet
	JD     float64 // Julian day of the computation

	HelioLon  unit.Angle // heliocentric ecliptic longitude
	HelioLat  unit.Angle // heliocentric ecliptic latitude
	HelioDist float64    // heliocentric distance, AU

	RA        unit.RA    // apparent right ascension
	Dec       unit.Angle // apparent declination
	Delta     float64    // distance from Earth, AU
	LightTime float64    // light travel time for Delta, days

	Mag        float64    // apparent visual magnitude
	Elongation unit.Angle // angular separation from the Sun
	Phase      unit.Angle // Sun-planet-Earth angle
	Diameter   unit.Angle // apparent equatorial diameter

	// Warnings lists numeric corrections applied during the computation,
	// such as an arcsine argument nudged back into [-1, 1].
	Warnings []string
}

// Equatorial returns the apparent place as a meeus coord.Equatorial, handy
// for feeding other routines of that library.
func (pos PlanetPosition) Equatorial() coord.Equatorial {
	return coord.Equatorial{RA: pos.RA, Dec: pos.Dec}
}

// IlluminatedFraction returns the fraction of the disk in sunlight.
func (pos PlanetPosition) IlluminatedFraction() float64 {
	return (1 + pos.Phase.Cos()) / 2
}

// String implements the Stringer interface.
func (pos PlanetPosition) String() string {
	return fmt.Sprintf("%s %v  α=%v δ=%v  Δ=%.4f AU  V=%+.1f", pos.Planet.Symbol(), pos.Planet,
		sexa.FmtRA(pos.RA), sexa.FmtAngle(pos.Dec), pos.Delta, pos.Mag)
}

// pipeline carries the tracer and collected warnings through one computation.
type pipeline struct {
	tr    Tracer
	warns []string
}

func (pl *pipeline) warnf(format string, a ...interface{}) {
	w := fmt.Sprintf(format, a...)
	pl.warns = append(pl.warns, w)
	trace(pl.tr, "warning", "%s", w)
}

// asin is math.Asin with the argument forced into [-1, 1]. Arguments only
// leave that range through floating point noise; the correction is recorded
// as a warning instead of letting a NaN through.
func (pl *pipeline) asin(x float64, site string) float64 {
	c, moved := clamp(x, -1, 1)
	if moved {
		pl.warnf("%s: asin argument %.17g clamped", site, x)
	}
	return math.Asin(c)
}

// helioEcliptic returns the heliocentric ecliptic longitude and latitude of
// planet p in degrees, and its radius in AU, at T centuries since J2000.0.
func (pl *pipeline) helioEcliptic(p Planet, T float64) (lon, lat, r float64) {
	el := meanElementTable[p].at(T)
	M := el.meanAnomaly()
	trace(pl.tr, "elements", "%v T=%.9f\na=%.9f AU e=%.9f i=%.6f°\nΩ=%.6f° ϖ=%.6f° L=%.6f°\nM=%.6f°",
		p, T, el.a, el.e, el.i, el.Ω, el.ϖ, el.L, M)

	E, converged := solveKepler(M*deg2rad, el.e)
	if !converged {
		pl.warnf("kepler: no convergence for %v after %d iterations (e=%.6f)", p, keplerMaxIter, el.e)
	}
	ν := trueAnomaly(E, el.e)
	r = radiusAU(el.a, el.e, E)
	trace(pl.tr, "kepler", "E=%.9f° ν=%.9f° r=%.9f AU", E/deg2rad, ν/deg2rad, r)

	ω := el.ϖ - el.Ω
	v := MxV33(perifocalToEcliptic(ω*deg2rad, el.i*deg2rad, el.Ω*deg2rad),
		[]float64{r * math.Cos(ν), r * math.Sin(ν), 0})
	lon = wrap360(math.Atan2(v[1], v[0]) / deg2rad)
	lat = math.Asin(v[2]/r) / deg2rad
	trace(pl.tr, "heliocentric", "%v lon=%.6f° lat=%.6f° r=%.9f AU", p, lon, lat, r)
	return lon, lat, r
}

// earthHelio returns the heliocentric rectangular ecliptic position of the
// Earth in AU along with its distance from the Sun. The elements are those
// of the Earth-Moon barycenter, which sits in the ecliptic plane, so z is
// identically zero and the longitude is simply ν + ϖ.
func (pl *pipeline) earthHelio(T float64) (x, y, r float64) {
	el := meanElementTable[Earth].at(T)
	M := el.meanAnomaly()
	E, converged := solveKepler(M*deg2rad, el.e)
	if !converged {
		pl.warnf("kepler: no convergence for %v after %d iterations (e=%.6f)", Earth, keplerMaxIter, el.e)
	}
	ν := trueAnomaly(E, el.e)
	r = radiusAU(el.a, el.e, E)
	lon := ν + el.ϖ*deg2rad
	x, y = r*math.Cos(lon), r*math.Sin(lon)
	trace(pl.tr, "earth", "lon=%.6f° r=%.9f AU", wrap360(lon/deg2rad), r)
	return x, y, r
}

// geocentric shifts the heliocentric spherical coordinates of the planet to
// the center of the Earth by subtracting the heliocentric Earth vector.
func (pl *pipeline) geocentric(lon, lat, r, ex, ey float64) (λ, β unit.Angle, Δ float64) {
	sinLat, cosLat := math.Sincos(lat * deg2rad)
	sinLon, cosLon := math.Sincos(lon * deg2rad)
	g := []float64{r*cosLat*cosLon - ex, r*cosLat*sinLon - ey, r * sinLat}
	Δ = norm(g)
	λ = unit.AngleFromDeg(wrap360(math.Atan2(g[1], g[0]) / deg2rad))
	β = unit.Angle(pl.asin(g[2]/Δ, "geocentric latitude"))
	trace(pl.tr, "geocentric", "λ=%.6f° β=%.6f° Δ=%.9f AU", λ.Deg(), β.Deg(), Δ)
	return
}

// equatorial rotates geocentric ecliptic coordinates into the equatorial
// frame of date for the true obliquity ε.
func (pl *pipeline) equatorial(λ, β, ε unit.Angle) (α unit.RA, δ unit.Angle) {
	sβ, cβ := β.Sincos()
	sλ, cλ := λ.Sincos()
	v := eclipticToEquatorial([]float64{cβ * cλ, cβ * sλ, sβ}, ε.Rad())
	α = unit.RAFromRad(math.Atan2(v[1], v[0]))
	δ = unit.Angle(pl.asin(v[2], "declination"))
	trace(pl.tr, "equatorial", "α=%.6f° δ=%.6f° ε=%.6f°", α.Deg(), δ.Deg(), ε.Deg())
	return
}

// trueObliquity returns the true obliquity of date, mean obliquity plus
// nutation in obliquity.
func trueObliquity(jd float64) unit.Angle {
	_, Δε := nutation.Nutation(jd)
	return nutation.MeanObliquity(jd) + Δε
}

// Position computes the apparent place and appearance of planet p as seen
// from the center of the Earth at Julian day jd. A non-nil tr receives one
// labeled snapshot per stage and does not affect the result. Asking for the
// Earth is a caller bug and panics.
func Position(p Planet, jd float64, tr Tracer) PlanetPosition {
	if p == Earth {
		panic("Earth is not a valid query body")
	}
	if p < Mercury || p > Neptune {
		panic(fmt.Errorf("undefined planet %d", int(p)))
	}
	pl := &pipeline{tr: tr}
	T := base.J2000Century(jd)
	trace(tr, "position", "%v jd=%.6f T=%.9f", p, jd, T)

	hLon, hLat, hR := pl.helioEcliptic(p, T)
	ex, ey, er := pl.earthHelio(T)
	λ, β, Δ := pl.geocentric(hLon, hLat, hR, ex, ey)

	τ := base.LightTime(Δ)
	trace(tr, "light-time", "τ=%.6f d (%.3f min)", τ, τ*24*60)

	α, δ := pl.equatorial(λ, β, trueObliquity(jd))

	pos := PlanetPosition{
		Planet:    p,
		JD:        jd,
		HelioLon:  unit.AngleFromDeg(hLon),
		HelioLat:  unit.AngleFromDeg(hLat),
		HelioDist: hR,
		RA:        α,
		Dec:       δ,
		Delta:     Δ,
		LightTime: τ,
	}

	ph := photometricTable[p]
	pos.Phase = phaseAngle(hR, er, Δ)
	pos.Mag = apparentMagnitude(ph, hR, Δ, pos.Phase)
	pos.Diameter = angularDiameter(ph, Δ)
	sunα, sunδ := solar.ApparentEquatorial(jd)
	pos.Elongation = elongation(α, δ, sunα, sunδ)
	trace(tr, "photometry", "V=%+.2f phase=%.2f° elongation=%.2f° diameter=%.2f″",
		pos.Mag, pos.Phase.Deg(), pos.Elongation.Deg(), pos.Diameter.Sec())

	pos.Warnings = pl.warns
	return pos
}

// Positions computes all seven observable planets at once.
func Positions(jd float64, tr Tracer) map[Planet]PlanetPosition {
	m := make(map[Planet]PlanetPosition, len(planetNames)-1)
	for _, p := range Planets() {
		m[p] = Position(p, jd, tr)
	}
	return m
}

// PositionNow is Position at the current system time.
func PositionNow(p Planet, tr Tracer) PlanetPosition {
	return Position(p, julian.TimeToJD(time.Now()), tr)
}

// PositionsNow is Positions at the current system time.
func PositionsNow(tr Tracer) map[Planet]PlanetPosition {
	return Positions(julian.TimeToJD(time.Now()), tr)
}
