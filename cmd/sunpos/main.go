package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/chrissnell/pvsynth/pkg/solar"
)

func main() {
	var (
		timeStr   string
		latitude  float64
		longitude float64
		altitude  float64
		zone      string
	)
	flag.StringVar(&timeStr, "time", "", "Time to evaluate (RFC3339 format, e.g., 2024-06-21T13:15:00+02:00)")
	flag.Float64Var(&latitude, "lat", 59.91, "Latitude in degrees, north positive")
	flag.Float64Var(&longitude, "lon", 10.75, "Longitude in degrees, east positive")
	flag.Float64Var(&altitude, "alt", 25, "Altitude in meters")
	flag.StringVar(&zone, "tz", "Europe/Oslo", "IANA time zone used for sunrise and sunset")
	flag.Parse()

	tz, err := time.LoadLocation(zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading time zone: %v\n", err)
		os.Exit(1)
	}

	t := time.Now().In(tz)
	if timeStr != "" {
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	loc := solar.Location{Latitude: latitude, Longitude: longitude, Altitude: altitude, Timezone: tz}
	pos := solar.Position(t, loc)

	fmt.Printf("Sun position for %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Elevation:    %.2f° (apparent %.2f°)\n", pos.ElevationDeg, pos.ApparentElevationDeg)
	fmt.Printf("  Azimuth:      %.2f°\n", pos.AzimuthDeg)
	fmt.Printf("  Declination:  %.2f°\n", pos.DeclinationDeg)
	fmt.Printf("  Eq. of time:  %.2f min\n", pos.EqOfTimeMin)
	fmt.Printf("  Distance:     %.5f AU\n", pos.EarthSunDistAU)
	if sunrise, sunset, ok := solar.SunriseSunset(t, loc); ok {
		fmt.Printf("  Sunrise:      %s\n", sunrise.Format("15:04"))
		fmt.Printf("  Sunset:       %s\n", sunset.Format("15:04"))
	} else {
		fmt.Printf("  Sunrise:      none (polar day or night)\n")
	}

	fmt.Printf("Clear-sky irradiance (W/m²)\n")
	for _, model := range solar.Models() {
		p, err := solar.NewProvider(model, solar.DefaultOptions())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s provider: %v\n", model, err)
			os.Exit(1)
		}
		samples, err := p.ClearSky(context.Background(), loc, []time.Time{t})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing %s: %v\n", model, err)
			os.Exit(1)
		}
		s := samples[0]
		fmt.Printf("  %-16s GHI %7.1f  DNI %7.1f  DHI %7.1f\n", model, s.GHI, s.DNI, s.DHI)
	}
}
