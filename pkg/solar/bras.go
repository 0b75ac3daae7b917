package solar

import "math"

// bras is the Bras clear-sky model. Turbidity ("nfac") ranges from 2 for
// clear air to 4-5 for smoggy urban air.
func bras(opts Options) skyModel {
	const solarConstant = 1367.0

	nfac := opts.BrasTurbidity
	return func(pos SunPosition, _ Location) (float64, float64, float64) {
		elDeg := pos.ApparentElevationDeg
		cosZen := math.Cos(degToRad(pos.ZenithDeg))
		if elDeg <= 0 || cosZen <= 0 {
			return 0, 0, 0
		}

		r := pos.EarthSunDistAU
		io := cosZen * solarConstant / (r * r)
		m := 1.0 / (cosZen + 0.15*math.Pow(elDeg+3.885, -1.253))
		a1 := 0.128 - 0.054*math.Log10(m)
		sr := io * math.Exp(-nfac*a1*m)

		// Bras only yields the total; report it as direct beam.
		return sr, sr / cosZen, 0
	}
}
