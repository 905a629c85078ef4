package starward

import (
	"math"
	"strings"
	"testing"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"
)

var testEpochs = []float64{2415021.0, 2440587.5, base.J2000, 2460310.5, 2488070.0}

func TestPositionGolden(t *testing.T) {
	// Windows checked against published ephemerides for 2000-01-01 12h TT.
	for _, exp := range []struct {
		planet       Planet
		raLo, raHi   float64
		decLo, decHi float64
	}{
		{Mars, 320, 340, -16, -10},
		{Jupiter, 20, 30, 6, 12},
		{Saturn, 35, 55, 8, 16},
	} {
		pos := Position(exp.planet, base.J2000, nil)
		if ra := pos.RA.Deg(); ra < exp.raLo || ra > exp.raHi {
			t.Fatalf("%v α=%.4f° outside [%.0f, %.0f]", exp.planet, ra, exp.raLo, exp.raHi)
		}
		if dec := pos.Dec.Deg(); dec < exp.decLo || dec > exp.decHi {
			t.Fatalf("%v δ=%.4f° outside [%.0f, %.0f]", exp.planet, dec, exp.decLo, exp.decHi)
		}
		if len(pos.Warnings) != 0 {
			t.Fatalf("%v: unexpected warnings %v", exp.planet, pos.Warnings)
		}
	}
}

func TestHelioDistance(t *testing.T) {
	// Perihelion to aphelion windows, with margin for the secular drift.
	bounds := map[Planet][2]float64{
		Mercury: {0.30, 0.48},
		Venus:   {0.71, 0.73},
		Mars:    {1.37, 1.68},
		Jupiter: {4.94, 5.47},
		Saturn:  {9.0, 10.1},
		Uranus:  {18.2, 20.2},
		Neptune: {29.7, 30.4},
	}
	for _, jd := range testEpochs {
		for p, b := range bounds {
			pos := Position(p, jd, nil)
			if pos.HelioDist < b[0] || pos.HelioDist > b[1] {
				t.Fatalf("%v r=%.4f AU outside [%.2f, %.2f] at jd=%.1f", p, pos.HelioDist, b[0], b[1], jd)
			}
		}
		// The Earth slots into the Venus-Mars gap.
		pl := &pipeline{}
		if _, _, r := pl.earthHelio(base.J2000Century(jd)); r < 0.98 || r > 1.02 {
			t.Fatalf("Earth r=%.4f AU outside [0.98, 1.02] at jd=%.1f", r, jd)
		}
		if len(pl.warns) != 0 {
			t.Fatalf("Earth chain warned at jd=%.1f: %v", jd, pl.warns)
		}
	}
}

func TestPositionRanges(t *testing.T) {
	for _, jd := range testEpochs {
		for _, p := range Planets() {
			pos := Position(p, jd, nil)
			if ra := pos.RA.Deg(); ra < 0 || ra >= 360 {
				t.Fatalf("%v α=%f° outside [0, 360) at jd=%.1f", p, ra, jd)
			}
			if dec := pos.Dec.Deg(); dec < -90 || dec > 90 {
				t.Fatalf("%v δ=%f° outside [-90, 90] at jd=%.1f", p, dec, jd)
			}
			if pos.Delta <= 0 || math.IsNaN(pos.Delta) {
				t.Fatalf("%v Δ=%f AU at jd=%.1f", p, pos.Delta, jd)
			}
			if pos.LightTime != base.LightTime(pos.Delta) {
				t.Fatalf("%v light-time %f does not match Δ=%f", p, pos.LightTime, pos.Delta)
			}
			if f := pos.IlluminatedFraction(); f < 0 || f > 1 {
				t.Fatalf("%v illuminated fraction %f at jd=%.1f", p, f, jd)
			}
			if math.IsNaN(pos.Mag) {
				t.Fatalf("%v magnitude is NaN at jd=%.1f", p, jd)
			}
		}
	}
}

func TestPositionPanics(t *testing.T) {
	assertPanic(t, func() {
		Position(Earth, base.J2000, nil)
	})
	assertPanic(t, func() {
		Position(Planet(99), base.J2000, nil)
	})
	assertPanic(t, func() {
		Position(Planet(-1), base.J2000, nil)
	})
}

func TestPositions(t *testing.T) {
	m := Positions(base.J2000, nil)
	if len(m) != 7 {
		t.Fatalf("expected 7 positions, got %d", len(m))
	}
	if _, found := m[Earth]; found {
		t.Fatal("Earth must not appear in Positions")
	}
	for p, pos := range m {
		if pos.Planet != p {
			t.Fatalf("entry for %v claims to be %v", p, pos.Planet)
		}
		if pos.JD != base.J2000 {
			t.Fatalf("entry for %v has jd=%f", p, pos.JD)
		}
	}
}

func TestPositionNow(t *testing.T) {
	pos := PositionNow(Venus, nil)
	if pos.Delta <= 0 || pos.JD < 2440587.5 {
		t.Fatalf("implausible current position: Δ=%f jd=%f", pos.Delta, pos.JD)
	}
	if len(PositionsNow(nil)) != 7 {
		t.Fatal("expected 7 current positions")
	}
}

func TestTracerDoesNotAlter(t *testing.T) {
	plain := Position(Mars, base.J2000, nil)
	rec := &recordingTracer{}
	traced := Position(Mars, base.J2000, rec)
	if plain.RA != traced.RA || plain.Dec != traced.Dec || plain.Delta != traced.Delta || plain.Mag != traced.Mag {
		t.Fatal("attaching a tracer changed the result")
	}
	for _, label := range []string{"position", "elements", "kepler", "heliocentric", "earth", "geocentric", "light-time", "equatorial", "photometry"} {
		if rec.count(label) != 1 {
			t.Fatalf("expected exactly one '%s' step, got %d", label, rec.count(label))
		}
	}
	if rec.count("warning") != 0 {
		t.Fatalf("unexpected warnings traced: %v", rec.details)
	}
}

func TestEquatorialMatchesMeeus(t *testing.T) {
	ε := unit.AngleFromDeg(23.4392911)
	sε, cε := ε.Sincos()
	for _, tc := range []struct{ λ, β float64 }{
		{123.456, -4.321},
		{359.0, 1.0},
		{250.5, 2.1},
		{0.0, 0.0},
	} {
		pl := &pipeline{}
		λ, β := unit.AngleFromDeg(tc.λ), unit.AngleFromDeg(tc.β)
		α, δ := pl.equatorial(λ, β, ε)
		expα, expδ := coord.EclToEq(λ, β, sε, cε)
		if ok, err := anglesEqual(α.Deg(), expα.Deg()); !ok {
			t.Fatalf("α for λ=%f β=%f: %s", tc.λ, tc.β, err)
		}
		if ok, err := anglesEqual(δ.Deg(), expδ.Deg()); !ok {
			t.Fatalf("δ for λ=%f β=%f: %s", tc.λ, tc.β, err)
		}
		if len(pl.warns) != 0 {
			t.Fatalf("unexpected warnings %v", pl.warns)
		}
	}
}

func TestPipelineWarnings(t *testing.T) {
	rec := &recordingTracer{}
	pl := &pipeline{tr: rec}
	if v := pl.asin(1.0000000001, "declination"); v != math.Pi/2 {
		t.Fatalf("clamped asin above 1 returned %f", v)
	}
	if v := pl.asin(-1.5, "geocentric latitude"); v != -math.Pi/2 {
		t.Fatalf("clamped asin below -1 returned %f", v)
	}
	if v := pl.asin(0.5, "declination"); v != math.Asin(0.5) {
		t.Fatalf("in-range asin altered: %f", v)
	}
	if len(pl.warns) != 2 {
		t.Fatalf("expected 2 warnings, got %v", pl.warns)
	}
	if !strings.Contains(pl.warns[0], "declination") || !strings.Contains(pl.warns[1], "geocentric latitude") {
		t.Fatalf("warnings do not name their site: %v", pl.warns)
	}
	if rec.count("warning") != 2 {
		t.Fatalf("expected 2 traced warnings, got %d", rec.count("warning"))
	}
}

func TestPositionString(t *testing.T) {
	s := Position(Mars, base.J2000, nil).String()
	if !strings.Contains(s, "Mars") || !strings.Contains(s, "♂") {
		t.Fatalf("unexpected position string %q", s)
	}
}
