package starward

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestObserver(t *testing.T) {
	o := NewObserver("Boulder", 40.015, -105.27)
	if !scalar.EqualWithinAbs(o.Lat().Deg(), 40.015, 1e-12) {
		t.Fatalf("latitude %f", o.Lat().Deg())
	}
	// East positive at the constructor, west positive inside.
	if !scalar.EqualWithinAbs(o.Lon().Deg(), 105.27, 1e-12) {
		t.Fatalf("longitude %f not flipped to west positive", o.Lon().Deg())
	}
	if o.Coord().Lat != o.Lat() || o.Coord().Lon != o.Lon() {
		t.Fatal("Coord disagrees with the accessors")
	}
	if s := o.String(); !strings.Contains(s, "Boulder") {
		t.Fatalf("unexpected observer string %q", s)
	}
	if Greenwich.Lat().Deg() < 51 || Greenwich.Lat().Deg() > 52 {
		t.Fatalf("Greenwich latitude %f", Greenwich.Lat().Deg())
	}
}
