package starward

import (
	"fmt"
	"strings"
)

// Planet is one of the eight major planets, ordered by increasing distance
// from the Sun. Earth is defined because the geocentric chain needs its
// heliocentric position, but it is not a valid query body: Position panics
// when asked for Earth as seen from Earth.
type Planet int

// String implements the Stringer interface.
func (p Planet) String() string {
	if p < Mercury || p > Neptune {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// Symbol returns the astronomical glyph of this planet.
func (p Planet) Symbol() string {
	if p < Mercury || p > Neptune {
		return "?"
	}
	return planetSymbols[p]
}

// Planets returns the seven planets observable from Earth, Mercury through
// Neptune.
func Planets() []Planet {
	return []Planet{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}
}

// ParsePlanet returns the planet from its name.
func ParsePlanet(name string) (Planet, error) {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return -1, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

const (
	// Mercury is small and in a hurry.
	Mercury Planet = iota
	// Venus is poisonous.
	Venus
	// Earth is home.
	Earth
	// Mars is the vacation place.
	Mars
	// Jupiter is big.
	Jupiter
	// Saturn floats and that's really cool.
	Saturn
	// Uranus is no joke.
	Uranus
	// Neptune is windy.
	Neptune
)

var planetNames = [...]string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

var planetSymbols = [...]string{"☿", "♀", "⊕", "♂", "♃", "♄", "⛢", "♆"}
