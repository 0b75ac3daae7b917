package app

import (
	"context"
	"fmt"
	"time"

	"github.com/chrissnell/pvsynth/internal/output"
	"github.com/chrissnell/pvsynth/pkg/config"
	"github.com/chrissnell/pvsynth/pkg/pvpower"
	"github.com/chrissnell/pvsynth/pkg/solar"
	"github.com/chrissnell/pvsynth/pkg/timegrid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App represents one generation run
type App struct {
	cfg    *config.ConfigData
	logger *zap.SugaredLogger
}

// Series holds every intermediate of a run, aligned by index with Times
type Series struct {
	Times   []time.Time
	Step    time.Duration
	GHI     []float64 // clear-sky, W/m²
	Power   []float64 // clear-sky, MW
	Factors []float64 // cloud factors
	Noisy   []float64 // Power * Factors, MW

	Model    string
	Location solar.Location
}

// New creates a new application instance
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Generate computes the series without touching the filesystem
func (a *App) Generate(ctx context.Context) (*Series, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	day, err := a.cfg.Day()
	if err != nil {
		return nil, err
	}
	step, err := a.cfg.StepDuration()
	if err != nil {
		return nil, err
	}

	times, err := timegrid.Day(day, loc.Timezone, step)
	if err != nil {
		return nil, fmt.Errorf("error building time grid: %w", err)
	}
	if err := timegrid.Validate(times); err != nil {
		return nil, err
	}

	provider, err := solar.NewProvider(a.cfg.Model.Name, a.cfg.SolarOptions())
	if err != nil {
		return nil, err
	}

	irradiance, err := provider.ClearSky(ctx, loc, times)
	if err != nil {
		return nil, fmt.Errorf("error computing %s clear sky: %w", provider.Name(), err)
	}

	ghi := solar.GHI(irradiance)
	power := pvpower.Scale(ghi, a.cfg.Plant.RatedMW)
	noisy, factors := pvpower.Cloudy(power, a.cfg.Noise.Seed, a.cfg.NoiseParams())

	return &Series{
		Times:    times,
		Step:     step,
		GHI:      ghi,
		Power:    power,
		Factors:  factors,
		Noisy:    noisy,
		Model:    provider.Name(),
		Location: loc,
	}, nil
}

// Run generates the series, writes the output tables, and logs a summary
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())

	logger.Infow("generating series",
		"site", a.cfg.Site.Name,
		"date", a.cfg.Date,
		"model", a.cfg.Model.Name,
		"rated_mw", a.cfg.Plant.RatedMW,
		"seed", a.cfg.Noise.Seed,
	)

	series, err := a.Generate(ctx)
	if err != nil {
		return err
	}

	name, values := "P_MW", series.Noisy
	if a.cfg.Output.PerUnit {
		name, values = "P_pu", perUnit(series.Noisy, a.cfg.Plant.RatedMW)
	}
	if err := output.WriteSeries(a.cfg.Output.Path, series.Times, output.Column{Name: name, Values: values}); err != nil {
		return fmt.Errorf("error writing %s: %w", a.cfg.Output.Path, err)
	}
	logger.Infow("wrote series", "path", a.cfg.Output.Path, "rows", len(series.Times))

	if a.cfg.Output.DetailPath != "" {
		err := output.WriteSeries(a.cfg.Output.DetailPath, series.Times,
			output.Column{Name: "GHI_W_m2", Values: series.GHI},
			output.Column{Name: "P_MW", Values: series.Power},
		)
		if err != nil {
			return fmt.Errorf("error writing %s: %w", a.cfg.Output.DetailPath, err)
		}
		logger.Infow("wrote clear-sky detail", "path", a.cfg.Output.DetailPath)
	}

	logSummary(logger, series)
	return nil
}

func perUnit(power []float64, ratedMW float64) []float64 {
	out := make([]float64, len(power))
	for i, p := range power {
		out[i] = p / ratedMW
	}
	return out
}
