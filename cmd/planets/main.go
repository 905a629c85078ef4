package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/MiqueiasCampelo/starward"
	"github.com/soniakeys/meeus/v3/julian"
	sexa "github.com/soniakeys/sexagesimal"
)

var (
	dateStr string
	jd      float64
	planet  string
	asJSON  bool
	verbose bool
	check   bool
)

func init() {
	flag.StringVar(&dateStr, "date", "", "UTC date, 2006-01-02 or 2006-01-02T15:04:05 (default now)")
	flag.Float64Var(&jd, "jd", 0, "Julian day, overrides -date")
	flag.StringVar(&planet, "planet", "", "single planet instead of the whole table")
	flag.BoolVar(&asJSON, "json", false, "emit JSON records")
	flag.BoolVar(&verbose, "v", false, "trace every computation stage to stderr")
	flag.BoolVar(&check, "check", false, "also print the VSOP87 place (needs configured data files)")
}

type record struct {
	Planet         string   `json:"planet"`
	Symbol         string   `json:"symbol"`
	JD             float64  `json:"jd"`
	RADeg          float64  `json:"ra_deg"`
	DecDeg         float64  `json:"dec_deg"`
	DeltaAU        float64  `json:"delta_au"`
	HelioDistAU    float64  `json:"helio_dist_au"`
	LightTimeMin   float64  `json:"light_time_min"`
	Mag            float64  `json:"magnitude"`
	ElongationDeg  float64  `json:"elongation_deg"`
	PhaseDeg       float64  `json:"phase_deg"`
	Illuminated    float64  `json:"illuminated_fraction"`
	DiameterArcsec float64  `json:"diameter_arcsec"`
	Warnings       []string `json:"warnings,omitempty"`
}

func newRecord(pos starward.PlanetPosition) record {
	return record{
		Planet:         pos.Planet.String(),
		Symbol:         pos.Planet.Symbol(),
		JD:             pos.JD,
		RADeg:          pos.RA.Deg(),
		DecDeg:         pos.Dec.Deg(),
		DeltaAU:        pos.Delta,
		HelioDistAU:    pos.HelioDist,
		LightTimeMin:   pos.LightTime * 24 * 60,
		Mag:            pos.Mag,
		ElongationDeg:  pos.Elongation.Deg(),
		PhaseDeg:       pos.Phase.Deg(),
		Illuminated:    pos.IlluminatedFraction(),
		DiameterArcsec: pos.Diameter.Sec(),
		Warnings:       pos.Warnings,
	}
}

func main() {
	flag.Parse()
	when := time.Now().UTC()
	if dateStr != "" {
		var err error
		if when, err = parseDate(dateStr); err != nil {
			log.Fatalf("cannot parse -date: %s", err)
		}
	}
	day := julian.TimeToJD(when)
	if jd != 0 {
		day = jd
	}

	var tr starward.Tracer
	if verbose {
		tr = starward.NewLogTracer(os.Stderr)
	}

	list := starward.Planets()
	if planet != "" {
		p, err := starward.ParsePlanet(planet)
		if err != nil {
			log.Fatal(err)
		}
		if p == starward.Earth {
			log.Fatal("Earth is not a valid query body")
		}
		list = []starward.Planet{p}
	}

	var vsop *starward.VSOP87Source
	if check {
		var err error
		if vsop, err = starward.LoadVSOP87(""); err != nil {
			log.Fatalf("cannot load VSOP87: %s", err)
		}
	}

	if asJSON {
		recs := make([]record, 0, len(list))
		for _, p := range list {
			recs = append(recs, newRecord(starward.Position(p, day, tr)))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recs); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Printf("planets for jd %.5f\n\n", day)
	for _, p := range list {
		pos := starward.Position(p, day, tr)
		fmt.Printf("%s %-8v α %v  δ %v  Δ %8.4f AU  V %+5.1f  elong %5.1f°  %6.1f″\n",
			pos.Planet.Symbol(), pos.Planet, sexa.FmtRA(pos.RA), sexa.FmtAngle(pos.Dec),
			pos.Delta, pos.Mag, pos.Elongation.Deg(), pos.Diameter.Sec())
		for _, w := range pos.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		if vsop != nil {
			α, δ := vsop.Equatorial(p, day)
			fmt.Printf("  vsop87:  α %v  δ %v\n", sexa.FmtRA(α), sexa.FmtAngle(δ))
		}
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date '%s'", s)
}
