package starward

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/elliptic"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/unit"
)

// vsopIndex maps a Planet to its planetposition table number.
var vsopIndex = [...]int{
	Mercury: pp.Mercury,
	Venus:   pp.Venus,
	Earth:   pp.Earth,
	Mars:    pp.Mars,
	Jupiter: pp.Jupiter,
	Saturn:  pp.Saturn,
	Uranus:  pp.Uranus,
	Neptune: pp.Neptune,
}

// VSOP87Source computes apparent places from the full VSOP87 series instead
// of the mean element propagation. It exists for cross checks: the mean
// elements are good to a few arcminutes over 1800-2050, VSOP87 to well
// under an arcsecond.
type VSOP87Source struct {
	earth   *pp.V87Planet
	planets [Neptune + 1]*pp.V87Planet
}

// LoadVSOP87 reads the VSOP87 B files from dir. An empty dir falls back to
// the configured VSOP87 directory.
func LoadVSOP87(dir string) (*VSOP87Source, error) {
	if dir == "" {
		dir = swConfig().VSOP87Dir
	}
	s := new(VSOP87Source)
	for p := Mercury; p <= Neptune; p++ {
		v, err := pp.LoadPlanetPath(vsopIndex[p], dir)
		if err != nil {
			return nil, fmt.Errorf("could not load %v: %s", p, err)
		}
		s.planets[p] = v
	}
	s.earth = s.planets[Earth]
	return s, nil
}

// Equatorial returns the apparent right ascension and declination of p at
// jd from the VSOP87 series, light-time corrected. Asking for the Earth
// panics, as with Position.
func (s *VSOP87Source) Equatorial(p Planet, jd float64) (unit.RA, unit.Angle) {
	if p == Earth {
		panic("Earth is not a valid query body")
	}
	return elliptic.Position(s.planets[p], s.earth, jd)
}
