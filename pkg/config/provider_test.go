package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrissnell/pvsynth/pkg/timegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pvsynth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultProvider(t *testing.T) {
	cfg, err := DefaultProvider{}.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 59.91, cfg.Site.Latitude)
	assert.Equal(t, 10.75, cfg.Site.Longitude)
	assert.Equal(t, 25.0, cfg.Site.Altitude)
	assert.Equal(t, "Europe/Oslo", cfg.Site.Timezone)
	assert.Equal(t, "ineichen", cfg.Model.Name)
	assert.Equal(t, 1.0, cfg.Plant.RatedMW)
	assert.Equal(t, uint64(42), cfg.Noise.Seed)
	assert.Equal(t, "normalized_timeseries/solar_production_normalized.csv", cfg.Output.Path)

	day, err := cfg.Day()
	require.NoError(t, err)
	assert.Equal(t, timegrid.Date{Year: 2024, Month: time.June, Day: 21}, day)

	step, err := cfg.StepDuration()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, step)
}

func TestYAMLProviderMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  name: Bergen
  latitude: 60.39
  longitude: 5.32
  altitude: 12
  timezone: Europe/Oslo
date: "2024-03-20"
step: 1h
plant:
  rated_mw: 2.5
noise:
  seed: 7
output:
  path: out/bergen.csv
  detail_path: out/bergen_detail.csv
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Bergen", cfg.Site.Name)
	assert.Equal(t, 2.5, cfg.Plant.RatedMW)
	assert.Equal(t, uint64(7), cfg.Noise.Seed)
	assert.Equal(t, "out/bergen_detail.csv", cfg.Output.DetailPath)

	// untouched keys keep their defaults
	assert.Equal(t, "ineichen", cfg.Model.Name)
	assert.Equal(t, 0.3, cfg.Noise.StdDev)
	assert.Equal(t, 1.3, cfg.Noise.Max)

	step, err := cfg.StepDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, step)
}

func TestYAMLProviderMissingFile(t *testing.T) {
	_, err := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml")).LoadConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLProviderMalformed(t *testing.T) {
	_, err := NewYAMLProvider(writeConfig(t, "site: [1, 2")).LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ConfigData)
		errMsg string
	}{
		{name: "latitude", mutate: func(c *ConfigData) { c.Site.Latitude = 91 }, errMsg: "site.latitude"},
		{name: "longitude", mutate: func(c *ConfigData) { c.Site.Longitude = -181 }, errMsg: "site.longitude"},
		{name: "timezone", mutate: func(c *ConfigData) { c.Site.Timezone = "Mars/Olympus_Mons" }, errMsg: "site.timezone"},
		{name: "date", mutate: func(c *ConfigData) { c.Date = "June 21" }, errMsg: "invalid date"},
		{name: "step unparseable", mutate: func(c *ConfigData) { c.Step = "fortnightly" }, errMsg: "step"},
		{name: "step uneven", mutate: func(c *ConfigData) { c.Step = "7m" }, errMsg: "step"},
		{name: "rated power", mutate: func(c *ConfigData) { c.Plant.RatedMW = 0 }, errMsg: "plant.rated_mw"},
		{name: "noise bounds", mutate: func(c *ConfigData) { c.Noise.Min = 2 }, errMsg: "noise"},
		{name: "model", mutate: func(c *ConfigData) { c.Model.Name = "perez" }, errMsg: "model"},
		{name: "output", mutate: func(c *ConfigData) { c.Output.Path = "" }, errMsg: "output.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateNil(t *testing.T) {
	var cfg *ConfigData
	assert.Error(t, cfg.Validate())
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Model.LinkeTurbidity = 4.2

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Oslo", loc.Timezone.String())
	assert.Equal(t, 59.91, loc.Latitude)

	assert.Equal(t, 4.2, cfg.SolarOptions().LinkeTurbidity)
	assert.False(t, cfg.SolarOptions().PerezEnhancement)

	cfg.Model.PerezEnhancement = true
	assert.True(t, cfg.SolarOptions().PerezEnhancement)

	noise := cfg.NoiseParams()
	assert.Equal(t, 1.0, noise.Mean)
	assert.Equal(t, 0.3, noise.Min)
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := NewYAMLProvider(filepath.Join("..", "..", "config.example.yaml")).LoadConfig()
	require.NoError(t, err)

	expected := Default()
	expected.Model.LinkeTurbidity = 3.0
	assert.Equal(t, expected, cfg)
}
