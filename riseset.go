package starward

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// Stdh0Planet is the standard altitude of the center of a planetary disk at
// the moment of apparent rise or set, refraction included.
var Stdh0Planet = unit.AngleFromDeg(-0.5667)

// HorizonState tells whether a planet crosses the horizon of a site during
// a given UT day.
type HorizonState int

const (
	// Crosses means the planet both rises and sets.
	Crosses HorizonState = iota
	// AlwaysAbove means the planet is circumpolar and never sets.
	AlwaysAbove
	// AlwaysBelow means the planet never climbs above the horizon.
	AlwaysBelow
)

// String implements the Stringer interface.
func (s HorizonState) String() string {
	switch s {
	case Crosses:
		return "crosses"
	case AlwaysAbove:
		return "always above"
	case AlwaysBelow:
		return "always below"
	}
	return fmt.Sprintf("HorizonState(%d)", int(s))
}

// hourAngle returns the half arc H between transit and the standard
// altitude h0 for site latitude φ and declination δ. The state reports the
// two degenerate geometries: cos H under -1 keeps the planet above the
// horizon all day, over +1 keeps it below.
func hourAngle(φ, δ, h0 unit.Angle) (unit.Angle, HorizonState) {
	sφ, cφ := φ.Sincos()
	sδ, cδ := δ.Sincos()
	cosH := (h0.Sin() - sφ*sδ) / (cφ * cδ)
	switch {
	case cosH < -1:
		return 0, AlwaysAbove
	case cosH > 1:
		return 0, AlwaysBelow
	}
	return unit.Angle(math.Acos(cosH)), Crosses
}

// Transit returns the Julian day of the meridian transit of p at site o
// falling in the UT day of jd.
func Transit(p Planet, o Observer, jd float64, tr Tracer) float64 {
	jd0 := math.Floor(jd-0.5) + 0.5
	pos := Position(p, jd0, tr)
	θ0 := sidereal.Mean0UT(jd0).Angle().Deg()
	frac := unit.PMod((pos.RA.Deg()-θ0+o.Lon().Deg())/360, 1)
	t := jd0 + frac
	trace(tr, "transit", "%v at %s jd0=%.1f θ0=%.6f° α=%.6f° frac=%.6f t=%.6f",
		p, o.Name, jd0, θ0, pos.RA.Deg(), frac, t)
	return t
}

// riseSet finds the transit for the UT day of jd and the half arc with the
// declination taken at the transit itself.
func riseSet(p Planet, o Observer, jd float64, tr Tracer) (t float64, H unit.Angle, state HorizonState) {
	t = Transit(p, o, jd, tr)
	pos := Position(p, t, tr)
	H, state = hourAngle(o.Lat(), pos.Dec, Stdh0Planet)
	if state != Crosses {
		trace(tr, "horizon", "%v at %s: %v (δ=%.4f° φ=%.4f°)", p, o.Name, state, pos.Dec.Deg(), o.Lat().Deg())
	}
	return
}

// Rise returns the Julian day of the apparent rise of p at site o in the UT
// day of jd. When the planet does not cross the horizon that day the state
// says which side it stays on and the time is zero.
func Rise(p Planet, o Observer, jd float64, tr Tracer) (float64, HorizonState) {
	t, H, state := riseSet(p, o, jd, tr)
	if state != Crosses {
		return 0, state
	}
	r := t - H.Deg()/360
	trace(tr, "rise", "%v at %s H=%.4f° t=%.6f", p, o.Name, H.Deg(), r)
	return r, Crosses
}

// Set returns the Julian day of the apparent set of p at site o in the UT
// day of jd, with the same degenerate handling as Rise.
func Set(p Planet, o Observer, jd float64, tr Tracer) (float64, HorizonState) {
	t, H, state := riseSet(p, o, jd, tr)
	if state != Crosses {
		return 0, state
	}
	s := t + H.Deg()/360
	trace(tr, "set", "%v at %s H=%.4f° t=%.6f", p, o.Name, H.Deg(), s)
	return s, Crosses
}

// RiseTransitSet bundles the three events of the UT day of jd in a single
// pass. Rise and set are zero unless the state is Crosses.
func RiseTransitSet(p Planet, o Observer, jd float64, tr Tracer) (rise, transit, set float64, state HorizonState) {
	transit, H, state := riseSet(p, o, jd, tr)
	if state != Crosses {
		return 0, transit, 0, state
	}
	rise = transit - H.Deg()/360
	set = transit + H.Deg()/360
	trace(tr, "rise", "%v at %s H=%.4f° t=%.6f", p, o.Name, H.Deg(), rise)
	trace(tr, "set", "%v at %s H=%.4f° t=%.6f", p, o.Name, H.Deg(), set)
	return rise, transit, set, Crosses
}

// Altitude returns the apparent altitude of p above the horizon of o at jd.
// Refraction is not included.
func Altitude(p Planet, o Observer, jd float64, tr Tracer) unit.Angle {
	pos := Position(p, jd, tr)
	_, h := coord.EqToHz(pos.RA, pos.Dec, o.Lat(), o.Lon(), sidereal.Apparent(jd))
	trace(tr, "altitude", "%v at %s h=%.4f° jd=%.6f", p, o.Name, h.Deg(), jd)
	return h
}

// TransitNow is Transit at the current system time.
func TransitNow(p Planet, o Observer, tr Tracer) float64 {
	return Transit(p, o, julian.TimeToJD(time.Now()), tr)
}

// RiseNow is Rise at the current system time.
func RiseNow(p Planet, o Observer, tr Tracer) (float64, HorizonState) {
	return Rise(p, o, julian.TimeToJD(time.Now()), tr)
}

// SetNow is Set at the current system time.
func SetNow(p Planet, o Observer, tr Tracer) (float64, HorizonState) {
	return Set(p, o, julian.TimeToJD(time.Now()), tr)
}

// RiseTransitSetNow is RiseTransitSet at the current system time.
func RiseTransitSetNow(p Planet, o Observer, tr Tracer) (rise, transit, set float64, state HorizonState) {
	return RiseTransitSet(p, o, julian.TimeToJD(time.Now()), tr)
}

// AltitudeNow is Altitude at the current system time.
func AltitudeNow(p Planet, o Observer, tr Tracer) unit.Angle {
	return Altitude(p, o, julian.TimeToJD(time.Now()), tr)
}
