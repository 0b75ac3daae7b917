package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// SunriseSunset returns sunrise and sunset on the local calendar day of day,
// expressed in the location's time zone. ok is false during polar day or
// polar night, when the sun does not cross the horizon.
func SunriseSunset(day time.Time, loc Location) (sunrise, sunset time.Time, ok bool) {
	zone := zoneOf(loc)
	local := day.In(zone)
	midnightUTC := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	doy := float64(local.YearDay())
	innerAngle := degToRad(356.6 + 0.9856*doy)
	outerAngle := degToRad(278.97 + 0.9856*doy + 1.9165*math.Sin(innerAngle))
	declinationRad := math.Asin(0.39785 * math.Sin(outerAngle))

	// cos(H) = -tan(lat) * tan(declination) at the horizon
	cosH := -math.Tan(degToRad(loc.Latitude)) * math.Tan(declinationRad)
	if cosH < -1.0 || cosH > 1.0 {
		return time.Time{}, time.Time{}, false
	}

	hourAngleMinutes := radToDeg(math.Acos(cosH)) * 4.0

	noon := midnightUTC.Add(12 * time.Hour)
	solarNoonUTC := 720.0 - loc.Longitude*4.0 - equationOfTime(julian.TimeToJD(noon))

	at := func(minutes float64) time.Time {
		return midnightUTC.Add(time.Duration(math.Round(minutes*60)) * time.Second).In(zone)
	}
	return at(solarNoonUTC - hourAngleMinutes), at(solarNoonUTC + hourAngleMinutes), true
}
