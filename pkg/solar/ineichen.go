package solar

import "math"

// ineichenPerez is the Ineichen-Perez clear-sky model with altitude
// corrected coefficients and a fixed Linke turbidity. The Perez
// enhancement factor for high air mass is only applied when requested.
func ineichenPerez(opts Options) skyModel {
	const solarConstant = 1366.1

	tl := opts.LinkeTurbidity
	enhance := opts.PerezEnhancement
	return func(pos SunPosition, loc Location) (float64, float64, float64) {
		alt := loc.Altitude
		cosZ := math.Max(math.Cos(degToRad(pos.ApparentZenithDeg())), 0)
		if cosZ == 0 {
			return 0, 0, 0
		}

		dniExtra := solarConstant / (pos.EarthSunDistAU * pos.EarthSunDistAU)
		amAbs := relativeAirMass(pos.ApparentZenithDeg()) * pressureAt(alt) / 101325.0

		fh1 := math.Exp(-alt / 8000.0)
		fh2 := math.Exp(-alt / 1250.0)
		cg1 := 5.09e-05*alt + 0.868
		cg2 := 3.92e-05*alt + 0.0387

		ghi := math.Exp(-cg2 * amAbs * (fh1 + fh2*(tl-1)))
		if enhance {
			ghi *= math.Exp(0.01 * math.Pow(amAbs, 1.8))
		}
		ghi = cg1 * dniExtra * cosZ * math.Max(ghi, 0)

		b := 0.664 + 0.163/fh1
		bnci := dniExtra * math.Max(b*math.Exp(-0.09*amAbs*(tl-1)), 0)
		bnci2 := (1 - (0.1-0.2*math.Exp(-tl))/(0.1+0.882/fh1)) / cosZ
		bnci2 = ghi * math.Min(math.Max(bnci2, 0), 1e20)

		dni := math.Min(bnci, bnci2)
		dhi := ghi - dni*cosZ
		return ghi, dni, dhi
	}
}

// simpleIneichen is a lightweight Ineichen-Perez approximation with a fixed
// turbidity of 2 and an empirical seasonal diffuse fraction.
func simpleIneichen(Options) skyModel {
	const (
		solarConstant = 1361.0
		TL            = 2.0   // Linke turbidity, clear sky
		c             = 0.7   // DNI normalization
		a             = 0.027 // extinction coefficient
	)

	return func(pos SunPosition, loc Location) (float64, float64, float64) {
		N := float64(pos.DayOfYear)
		thetaZ := pos.ZenithDeg
		if thetaZ >= 90 {
			return 0, 0, 0
		}

		G0 := solarConstant * (1 + 0.033*math.Cos(degToRad(360.0*(N-3)/365.0)))
		AM := relativeAirMass(thetaZ)
		dni := G0 * c * math.Exp(-a*AM*TL*math.Exp(-loc.Altitude/8000.0))

		fh := 0.1 + 0.05*math.Sin(math.Pi*(N-100)/365.0)
		dhi := fh * G0 * math.Sin(degToRad(thetaZ))
		return dni*math.Cos(degToRad(thetaZ)) + dhi, dni, dhi
	}
}

// relativeAirMass uses the Kasten-Young formula.
func relativeAirMass(zenithDeg float64) float64 {
	return 1.0 / (math.Cos(degToRad(zenithDeg)) + 0.50572*math.Pow(96.07995-zenithDeg, -1.6364))
}

// pressureAt returns standard atmospheric pressure in Pa at altitude meters.
func pressureAt(altitude float64) float64 {
	return 101325.0 * math.Pow(1-2.25577e-5*altitude, 5.25588)
}
