package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/refraction"
	"github.com/soniakeys/meeus/v3/sidereal"
	msolar "github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// SunPosition is the apparent position of the sun for an observer.
type SunPosition struct {
	ZenithDeg            float64
	ElevationDeg         float64 // geometric, no refraction
	ApparentElevationDeg float64 // with atmospheric refraction
	AzimuthDeg           float64 // clockwise from north
	DeclinationDeg       float64
	EqOfTimeMin          float64
	EarthSunDistAU       float64
	DayOfYear            int
}

// ApparentZenithDeg is the refraction corrected zenith angle.
func (p SunPosition) ApparentZenithDeg() float64 {
	return 90 - p.ApparentElevationDeg
}

// Position computes the sun position at t for loc. Dynamical time is
// approximated by UT; the difference is well below a 15 minute grid.
func Position(t time.Time, loc Location) SunPosition {
	utc := t.UTC()
	jd := julian.TimeToJD(utc)

	ra, dec := msolar.ApparentEquatorial(jd)
	gast := sidereal.Apparent(jd)

	latRad := degToRad(loc.Latitude)
	hourAngle := gast.Rad() + degToRad(loc.Longitude) - ra.Rad()

	sinEl := math.Sin(latRad)*dec.Sin() + math.Cos(latRad)*dec.Cos()*math.Cos(hourAngle)
	sinEl = math.Max(-1, math.Min(1, sinEl))
	elDeg := radToDeg(math.Asin(sinEl))

	az := math.Atan2(-math.Sin(hourAngle), math.Cos(latRad)*dec.Tan()-math.Sin(latRad)*math.Cos(hourAngle))

	apparentEl := elDeg
	if elDeg > -1 {
		apparentEl += refraction.Saemundsson(unit.AngleFromDeg(elDeg)).Deg()
	}

	return SunPosition{
		ZenithDeg:            90 - elDeg,
		ElevationDeg:         elDeg,
		ApparentElevationDeg: apparentEl,
		AzimuthDeg:           fixAngle(radToDeg(az)),
		DeclinationDeg:       dec.Deg(),
		EqOfTimeMin:          equationOfTime(jd),
		EarthSunDistAU:       msolar.Radius(base.J2000Century(jd)),
		DayOfYear:            t.In(zoneOf(loc)).YearDay(),
	}
}

// equationOfTime returns apparent minus mean solar time in minutes.
func equationOfTime(jd float64) float64 {
	T := base.J2000Century(jd)

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))            // mean longitude of the sun
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))             // mean anomaly
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)                  // orbital eccentricity
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60 // mean obliquity

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	return radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4
}

func zoneOf(loc Location) *time.Location {
	if loc.Timezone == nil {
		return time.UTC
	}
	return loc.Timezone
}
