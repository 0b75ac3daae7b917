package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	_ "time/tzdata"

	"github.com/chrissnell/pvsynth/pkg/pvpower"
	"github.com/chrissnell/pvsynth/pkg/solar"
	"github.com/chrissnell/pvsynth/pkg/timegrid"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	LoadConfig() (*ConfigData, error)
}

// ConfigData represents the complete configuration of one generation run
type ConfigData struct {
	Site   SiteData   `yaml:"site"`
	Date   string     `yaml:"date"`
	Step   string     `yaml:"step"`
	Model  ModelData  `yaml:"model"`
	Plant  PlantData  `yaml:"plant"`
	Noise  NoiseData  `yaml:"noise"`
	Output OutputData `yaml:"output"`
	Log    LogData    `yaml:"log"`
}

// SiteData holds the geographic location of the simulated plant
type SiteData struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Altitude  float64 `yaml:"altitude"`
	Timezone  string  `yaml:"timezone"`
}

// ModelData selects and tunes the clear-sky model
type ModelData struct {
	Name             string  `yaml:"name"`
	LinkeTurbidity   float64 `yaml:"linke_turbidity,omitempty"`
	BrasTurbidity    float64 `yaml:"bras_turbidity,omitempty"`
	AirTempC         float64 `yaml:"air_temp_c,omitempty"`
	RelativeHumidity float64 `yaml:"relative_humidity,omitempty"`
	PerezEnhancement bool    `yaml:"perez_enhancement,omitempty"`
}

// PlantData holds the nameplate of the PV plant
type PlantData struct {
	RatedMW float64 `yaml:"rated_mw"`
}

// NoiseData holds the cloud variability settings
type NoiseData struct {
	Seed   uint64  `yaml:"seed"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// OutputData holds the destination tables
type OutputData struct {
	Path       string `yaml:"path"`
	DetailPath string `yaml:"detail_path,omitempty"`

	// PerUnit writes power divided by plant.rated_mw as "P_pu"; otherwise
	// absolute power is written as "P_MW".
	PerUnit bool `yaml:"per_unit"`
}

// LogData configures an optional rotated log file in addition to stderr
type LogData struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// Default returns the reference run: a 1 MW plant in Oslo on the 2024
// summer solstice, 15 minute steps, Ineichen clear sky, seed 42.
func Default() *ConfigData {
	noise := pvpower.DefaultNoise()
	return &ConfigData{
		Site: SiteData{
			Name:      "Oslo",
			Latitude:  59.91,
			Longitude: 10.75,
			Altitude:  25,
			Timezone:  "Europe/Oslo",
		},
		Date:  "2024-06-21",
		Step:  "15m",
		Model: ModelData{Name: solar.DefaultModel},
		Plant: PlantData{RatedMW: 1.0},
		Noise: NoiseData{
			Seed:   42,
			Mean:   noise.Mean,
			StdDev: noise.StdDev,
			Min:    noise.Min,
			Max:    noise.Max,
		},
		Output: OutputData{
			Path:    "normalized_timeseries/solar_production_normalized.csv",
			PerUnit: true,
		},
	}
}

// DefaultProvider serves Default() when no configuration file is given
type DefaultProvider struct{}

// LoadConfig returns the validated default configuration
func (DefaultProvider) LoadConfig() (*ConfigData, error) {
	c := Default()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every field needed to run the pipeline
func (c *ConfigData) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	var errs []error
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 || math.IsNaN(c.Site.Latitude) {
		errs = append(errs, fmt.Errorf("site.latitude %v out of range [-90, 90]", c.Site.Latitude))
	}
	if c.Site.Longitude < -180 || c.Site.Longitude > 180 || math.IsNaN(c.Site.Longitude) {
		errs = append(errs, fmt.Errorf("site.longitude %v out of range [-180, 180]", c.Site.Longitude))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Day(); err != nil {
		errs = append(errs, err)
	}
	if step, err := c.StepDuration(); err != nil {
		errs = append(errs, err)
	} else if _, err := timegrid.Day(timegrid.Date{Year: 2000, Month: time.January, Day: 1}, time.UTC, step); err != nil {
		errs = append(errs, fmt.Errorf("step: %w", err))
	}
	if c.Plant.RatedMW <= 0 || math.IsNaN(c.Plant.RatedMW) {
		errs = append(errs, fmt.Errorf("plant.rated_mw %v must be positive", c.Plant.RatedMW))
	}
	if err := c.NoiseParams().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("noise: %w", err))
	}
	if _, err := solar.NewProvider(c.Model.Name, c.SolarOptions()); err != nil {
		errs = append(errs, fmt.Errorf("model: %w", err))
	}
	if c.Output.Path == "" {
		errs = append(errs, errors.New("output.path is required"))
	}

	return errors.Join(errs...)
}

// Location resolves the site into a solar.Location with a loaded time zone
func (c *ConfigData) Location() (solar.Location, error) {
	tz, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return solar.Location{}, fmt.Errorf("site.timezone %q: %w", c.Site.Timezone, err)
	}
	return solar.Location{
		Latitude:  c.Site.Latitude,
		Longitude: c.Site.Longitude,
		Altitude:  c.Site.Altitude,
		Timezone:  tz,
	}, nil
}

// Day parses the configured calendar date
func (c *ConfigData) Day() (timegrid.Date, error) {
	return timegrid.ParseDate(c.Date)
}

// StepDuration parses the configured sampling interval
func (c *ConfigData) StepDuration() (time.Duration, error) {
	if c.Step == "" {
		return timegrid.DefaultStep, nil
	}
	d, err := time.ParseDuration(c.Step)
	if err != nil {
		return 0, fmt.Errorf("step %q: %w", c.Step, err)
	}
	return d, nil
}

// NoiseParams converts the noise section for pvpower
func (c *ConfigData) NoiseParams() pvpower.NoiseParams {
	return pvpower.NoiseParams{
		Mean:   c.Noise.Mean,
		StdDev: c.Noise.StdDev,
		Min:    c.Noise.Min,
		Max:    c.Noise.Max,
	}
}

// SolarOptions converts the model section for solar.NewProvider
func (c *ConfigData) SolarOptions() solar.Options {
	return solar.Options{
		LinkeTurbidity:   c.Model.LinkeTurbidity,
		BrasTurbidity:    c.Model.BrasTurbidity,
		AirTempC:         c.Model.AirTempC,
		RelativeHumidity: c.Model.RelativeHumidity,
		PerezEnhancement: c.Model.PerezEnhancement,
	}
}
