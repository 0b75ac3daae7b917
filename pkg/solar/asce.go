package solar

import "math"

// asce is the ASCE standardized reference clear-sky shortwave model, which
// accounts for pressure and precipitable water at the site.
func asce(opts Options) skyModel {
	const (
		solarConstant = 1361.0
		Kt            = 1.0 // clearness index
	)

	airTemp := opts.AirTempC
	humidity := opts.RelativeHumidity
	return func(pos SunPosition, loc Location) (float64, float64, float64) {
		dayOfYear := float64(pos.DayOfYear)
		solarZ := pos.ZenithDeg

		dR := 1 + 0.033*math.Cos(((2*math.Pi)/365)*dayOfYear)

		// Atmospheric pressure (kPa)
		pB := 101.325 * math.Exp((loc.Altitude*-1*9.80665)/((8.314472/0.028967)*(airTemp+273.15)))
		// Vapor pressure (kPa)
		eA := 0.61121 * math.Exp(((18.678-airTemp/234.5)*airTemp)/(257.14+airTemp)) * (humidity / 100)

		swA := solarConstant * dR * math.Cos(degToRad(solarZ))
		if swA <= 0 {
			return 0, 0, 0
		}

		// Precipitable water (mm)
		w := 0.15*eA*pB + 0.6

		sinBeta := math.Sin(degToRad(90 - solarZ))
		kB := 0.98 * math.Exp((-0.00146*pB)/(Kt*sinBeta)-0.075*math.Pow(w/sinBeta, 0.4))

		var kD float64
		if kB > 0.15 {
			kD = 0.35 - 0.36*kB
		} else {
			kD = 0.18 + 0.82*kB
		}

		dni := kB * solarConstant * dR
		return (kB + kD) * swA, dni, kD * swA
	}
}
