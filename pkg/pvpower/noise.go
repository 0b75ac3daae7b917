package pvpower

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// noiseStream is the PCG stream selector paired with the user seed. Changing
// it changes every generated series.
const noiseStream uint64 = 0x5eed_c10d

var (
	// ErrLengthMismatch is returned when power and factor slices differ in length.
	ErrLengthMismatch = errors.New("power and factor lengths differ")
	// ErrBadNoise is returned for invalid NoiseParams.
	ErrBadNoise = errors.New("invalid noise parameters")
)

// NoiseParams describes the cloud factor distribution: a normal draw with
// the given mean and standard deviation, clipped to [Min, Max].
type NoiseParams struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// DefaultNoise returns N(1.0, 0.3) clipped to [0.3, 1.3].
func DefaultNoise() NoiseParams {
	return NoiseParams{Mean: 1.0, StdDev: 0.3, Min: 0.3, Max: 1.3}
}

// Validate checks that the distribution is usable.
func (p NoiseParams) Validate() error {
	if p.StdDev < 0 || math.IsNaN(p.StdDev) {
		return fmt.Errorf("stddev %v must be non-negative: %w", p.StdDev, ErrBadNoise)
	}
	if p.Min > p.Max {
		return fmt.Errorf("min %v exceeds max %v: %w", p.Min, p.Max, ErrBadNoise)
	}
	return nil
}

// NewSource returns the random source for one generation run: a PCG
// generator seeded with (seed, noiseStream). Two sources built from the
// same seed yield identical draw sequences.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, noiseStream)
}

// Factors draws n cloud factors from src, one per timestamp in order.
func Factors(src rand.Source, n int, p NoiseParams) []float64 {
	dist := distuv.Normal{Mu: p.Mean, Sigma: p.StdDev, Src: src}

	factors := make([]float64, n)
	for i := range factors {
		factors[i] = clip(dist.Rand(), p.Min, p.Max)
	}
	return factors
}

// Perturb multiplies each power sample by its factor.
func Perturb(power, factors []float64) ([]float64, error) {
	if len(power) != len(factors) {
		return nil, fmt.Errorf("%d power samples, %d factors: %w", len(power), len(factors), ErrLengthMismatch)
	}

	out := make([]float64, len(power))
	for i := range power {
		out[i] = power[i] * factors[i]
	}
	return out, nil
}

// Cloudy draws a fresh factor for every power sample from a source seeded
// with seed and returns the perturbed series together with the factors.
func Cloudy(power []float64, seed uint64, p NoiseParams) (noisy, factors []float64) {
	factors = Factors(NewSource(seed), len(power), p)
	noisy = make([]float64, len(power))
	for i := range power {
		noisy[i] = power[i] * factors[i]
	}
	return noisy, factors
}

func clip(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
