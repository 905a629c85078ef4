package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/MiqueiasCampelo/starward"
	"github.com/soniakeys/meeus/v3/julian"
)

var (
	planetName string
	days       int
	dateStr    string
	lat, lon   float64
	site       string
	verbose    bool
)

func init() {
	flag.StringVar(&planetName, "planet", "jupiter", "planet to tabulate")
	flag.IntVar(&days, "days", 10, "number of days")
	flag.StringVar(&dateStr, "date", "", "first UTC date, 2006-01-02 (default today)")
	flag.Float64Var(&lat, "lat", math.NaN(), "site latitude in degrees, north positive")
	flag.Float64Var(&lon, "lon", math.NaN(), "site longitude in degrees, east positive")
	flag.StringVar(&site, "name", "", "site name")
	flag.BoolVar(&verbose, "v", false, "trace every computation stage to stderr")
}

func main() {
	flag.Parse()
	p, err := starward.ParsePlanet(planetName)
	if err != nil {
		log.Fatal(err)
	}
	if p == starward.Earth {
		log.Fatal("Earth is not a valid query body")
	}

	obs := starward.DefaultObserver()
	if !math.IsNaN(lat) && !math.IsNaN(lon) {
		if site == "" {
			site = "site"
		}
		obs = starward.NewObserver(site, lat, lon)
	}

	start := time.Now().UTC()
	if dateStr != "" {
		if start, err = time.Parse("2006-01-02", dateStr); err != nil {
			log.Fatalf("cannot parse -date: %s", err)
		}
	}

	var tr starward.Tracer
	if verbose {
		tr = starward.NewLogTracer(os.Stderr)
	}

	fmt.Printf("%s %v rise, transit and set at %s\n\n", p.Symbol(), p, obs)
	fmt.Printf("%-12s %-7s %-7s %-7s %-11s %s\n", "date", "rise", "transit", "set", "transit alt", "V")
	jd := math.Floor(julian.TimeToJD(start)-0.5) + 0.5
	for i := 0; i < days; i++ {
		day := jd + float64(i)
		rise, transit, set, state := starward.RiseTransitSet(p, obs, day, tr)
		date := julian.JDToTime(day).Format("2006-01-02")
		switch state {
		case starward.Crosses:
			alt := starward.Altitude(p, obs, transit, nil)
			pos := starward.Position(p, transit, nil)
			fmt.Printf("%-12s %-7s %-7s %-7s %8.2f°   %+5.1f\n",
				date, clock(rise), clock(transit), clock(set), alt.Deg(), pos.Mag)
		case starward.AlwaysAbove:
			fmt.Printf("%-12s circumpolar, transit %s\n", date, clock(transit))
		case starward.AlwaysBelow:
			fmt.Printf("%-12s below the horizon all day\n", date)
		}
	}
}

// clock renders the time of day of a Julian day as UT hh:mm.
func clock(jd float64) string {
	return julian.JDToTime(jd).Format("15:04")
}
