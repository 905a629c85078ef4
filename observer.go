package starward

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/unit"
)

// Observer is a topocentric observing site. The constructor takes longitudes
// positive east of Greenwich; internally they are stored west positive, as
// the meeus globe package expects.
type Observer struct {
	Name  string
	coord globe.Coord
}

// NewObserver returns an observer at the given geographic coordinates in
// degrees, latitude north positive and longitude east positive.
func NewObserver(name string, latDeg, lonDeg float64) Observer {
	return Observer{name, globe.Coord{Lat: unit.AngleFromDeg(latDeg), Lon: unit.AngleFromDeg(-lonDeg)}}
}

// String implements the Stringer interface.
func (o Observer) String() string {
	return fmt.Sprintf("%s (%.4f°N %.4f°E)", o.Name, o.coord.Lat.Deg(), -o.coord.Lon.Deg())
}

// Lat returns the geographic latitude, north positive.
func (o Observer) Lat() unit.Angle {
	return o.coord.Lat
}

// Lon returns the geographic longitude, west positive.
func (o Observer) Lon() unit.Angle {
	return o.coord.Lon
}

// Coord returns the site in the meeus convention, longitude west positive.
func (o Observer) Coord() globe.Coord {
	return o.coord
}

// Greenwich is the fallback observing site when none is configured.
var Greenwich = NewObserver("Greenwich", 51.4769, -0.0005)
