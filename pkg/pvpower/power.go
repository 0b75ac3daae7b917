// Package pvpower turns clear-sky irradiance into PV active power and
// applies seeded cloud variability to it.
package pvpower

// ReferenceIrradiance is the standard test condition irradiance in W/m².
const ReferenceIrradiance = 1000.0

// Scale converts GHI samples (W/m²) into active power for a plant rated at
// ratedMW: P = GHI / 1000 * P_rated. The result is not clamped to the rating;
// clear-sky GHI above 1000 W/m² yields power slightly above P_rated.
func Scale(ghi []float64, ratedMW float64) []float64 {
	power := make([]float64, len(ghi))
	for i, g := range ghi {
		power[i] = (g / ReferenceIrradiance) * ratedMW
	}
	return power
}
