package solar

import (
	"testing"
	"time"
)

func TestSunriseSunset(t *testing.T) {
	tests := []struct {
		name        string
		day         time.Time
		loc         Location
		expectSun   bool
		sunriseUTC  string // approximate, HH:MM
		sunsetUTC   string
		toleranceMn float64
	}{
		{
			name:        "Equator at equinox",
			day:         time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
			loc:         Location{Latitude: 0, Longitude: 0},
			expectSun:   true,
			sunriseUTC:  "06:00",
			sunsetUTC:   "18:00",
			toleranceMn: 30,
		},
		{
			name:        "London summer solstice",
			day:         time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
			loc:         Location{Latitude: 51.5, Longitude: -0.1},
			expectSun:   true,
			sunriseUTC:  "03:43",
			sunsetUTC:   "20:21",
			toleranceMn: 30,
		},
		{
			name:        "Oslo summer solstice",
			day:         time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
			loc:         Location{Latitude: 59.91, Longitude: 10.75},
			expectSun:   true,
			sunriseUTC:  "01:53",
			sunsetUTC:   "20:44",
			toleranceMn: 30,
		},
		{
			name:      "Arctic polar day",
			day:       time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
			loc:       Location{Latitude: 70.0, Longitude: 25.0},
			expectSun: false,
		},
		{
			name:      "Arctic polar night",
			day:       time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC),
			loc:       Location{Latitude: 70.0, Longitude: 25.0},
			expectSun: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sunrise, sunset, ok := SunriseSunset(tt.day, tt.loc)
			if ok != tt.expectSun {
				t.Fatalf("ok=%v, expected %v", ok, tt.expectSun)
			}
			if !ok {
				return
			}

			check := func(label string, got time.Time, want string) {
				w, err := time.Parse("15:04", want)
				if err != nil {
					t.Fatal(err)
				}
				expected := time.Date(tt.day.Year(), tt.day.Month(), tt.day.Day(), w.Hour(), w.Minute(), 0, 0, time.UTC)
				if diff := got.Sub(expected).Abs().Minutes(); diff > tt.toleranceMn {
					t.Errorf("%s=%s, expected ~%s UTC (±%.0f min)", label, got.UTC().Format("15:04"), want, tt.toleranceMn)
				}
			}
			check("sunrise", sunrise, tt.sunriseUTC)
			check("sunset", sunset, tt.sunsetUTC)
		})
	}
}

func TestSunriseSunsetInLocalZone(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Skipf("Europe/Oslo unavailable: %v", err)
	}

	sunrise, sunset, ok := SunriseSunset(time.Date(2024, 6, 21, 0, 0, 0, 0, oslo), Location{Latitude: 59.91, Longitude: 10.75, Timezone: oslo})
	if !ok {
		t.Fatal("expected sunrise and sunset in Oslo")
	}
	if sunrise.Location() != oslo || sunset.Location() != oslo {
		t.Errorf("expected times in Europe/Oslo, got %v and %v", sunrise.Location(), sunset.Location())
	}
	if !sunrise.Before(sunset) {
		t.Errorf("sunrise %v should precede sunset %v", sunrise, sunset)
	}
}

func TestSunriseSunsetConsistency(t *testing.T) {
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	for doy := 0; doy < 365; doy++ {
		day := start.AddDate(0, 0, doy)
		sunrise, sunset, ok := SunriseSunset(day, Location{Latitude: 45.0})
		if !ok {
			t.Errorf("day %d: unexpected polar conditions at 45°N", doy+1)
			continue
		}

		dayLength := sunset.Sub(sunrise)
		if dayLength < 4*time.Hour || dayLength > 20*time.Hour {
			t.Errorf("day %d: unreasonable day length: %v", doy+1, dayLength)
		}
	}
}
