package app

import (
	"time"

	"github.com/chrissnell/pvsynth/pkg/solar"
	"github.com/chrissnell/pvsynth/pkg/timegrid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a generated series
type Summary struct {
	Steps int

	PeakMW    float64
	PeakAt    time.Time
	EnergyMWh float64

	NoisyPeakMW    float64
	NoisyPeakAt    time.Time
	NoisyEnergyMWh float64

	FactorMean   float64
	FactorStdDev float64
}

// Summarize computes peak power, energy, and cloud factor statistics.
// Energy integrates each sample over one grid step. The spread of a single
// factor is reported as zero.
func Summarize(s *Series) Summary {
	sum := Summary{Steps: len(s.Times)}
	if len(s.Times) == 0 {
		return sum
	}

	hours := s.Step.Hours()
	if hours == 0 {
		hours = timegrid.StepHours(s.Times)
	}

	i := floats.MaxIdx(s.Power)
	sum.PeakMW, sum.PeakAt = s.Power[i], s.Times[i]
	sum.EnergyMWh = floats.Sum(s.Power) * hours

	i = floats.MaxIdx(s.Noisy)
	sum.NoisyPeakMW, sum.NoisyPeakAt = s.Noisy[i], s.Times[i]
	sum.NoisyEnergyMWh = floats.Sum(s.Noisy) * hours

	if len(s.Factors) < 2 {
		sum.FactorMean = floats.Sum(s.Factors)
		return sum
	}
	sum.FactorMean, sum.FactorStdDev = stat.MeanStdDev(s.Factors, nil)
	return sum
}

func logSummary(logger *zap.SugaredLogger, s *Series) {
	sum := Summarize(s)

	logger.Infof("generated %d time steps", sum.Steps)
	logger.Infow("clear-sky production",
		"peak_mw", sum.PeakMW,
		"peak_at", sum.PeakAt.Format(time.RFC3339),
		"energy_mwh", sum.EnergyMWh,
	)
	logger.Infow("cloud-affected production",
		"peak_mw", sum.NoisyPeakMW,
		"peak_at", sum.NoisyPeakAt.Format(time.RFC3339),
		"energy_mwh", sum.NoisyEnergyMWh,
		"factor_mean", sum.FactorMean,
		"factor_stddev", sum.FactorStdDev,
	)

	if len(s.Times) > 0 {
		if sunrise, sunset, ok := solar.SunriseSunset(s.Times[0], s.Location); ok {
			logger.Debugw("daylight", "sunrise", sunrise.Format(time.RFC3339), "sunset", sunset.Format(time.RFC3339))
		} else {
			logger.Debugw("daylight", "polar", true)
		}
	}
}
