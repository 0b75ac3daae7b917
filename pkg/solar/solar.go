// Package solar computes sun position and clear-sky irradiance for a site.
//
// Irradiance models are looked up by name through NewProvider so callers can
// swap the clear-sky model without touching the power pipeline.
package solar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// DefaultModel is the clear-sky model used when none is configured.
const DefaultModel = "ineichen"

// ErrUnknownModel is returned by NewProvider for unregistered model names.
var ErrUnknownModel = errors.New("unknown clear-sky model")

// Location describes the observer.
type Location struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Altitude  float64 // meters above sea level
	Timezone  *time.Location
}

// Irradiance holds the clear-sky components for one timestamp, in W/m².
type Irradiance struct {
	Time time.Time
	GHI  float64 // global horizontal
	DNI  float64 // direct normal
	DHI  float64 // diffuse horizontal

	Position SunPosition
}

// Options tunes the atmosphere assumed by the models. Zero values fall back
// to the defaults in DefaultOptions.
type Options struct {
	LinkeTurbidity   float64 // ineichen
	BrasTurbidity    float64 // bras, "nfac"
	AirTempC         float64 // asce
	RelativeHumidity float64 // asce, percent

	// PerezEnhancement boosts ineichen GHI at low sun. Off by default.
	PerezEnhancement bool
}

// DefaultOptions returns a clean, dry, mid-latitude atmosphere.
func DefaultOptions() Options {
	return Options{
		LinkeTurbidity:   3.0,
		BrasTurbidity:    2.0,
		AirTempC:         15.0,
		RelativeHumidity: 50.0,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.LinkeTurbidity <= 0 {
		o.LinkeTurbidity = d.LinkeTurbidity
	}
	if o.BrasTurbidity <= 0 {
		o.BrasTurbidity = d.BrasTurbidity
	}
	if o.AirTempC == 0 {
		o.AirTempC = d.AirTempC
	}
	if o.RelativeHumidity <= 0 {
		o.RelativeHumidity = d.RelativeHumidity
	}
	return o
}

// Provider returns clear-sky irradiance aligned one-to-one with the given times.
type Provider interface {
	Name() string
	ClearSky(ctx context.Context, loc Location, times []time.Time) ([]Irradiance, error)
}

// skyModel computes irradiance from an already resolved sun position.
type skyModel func(pos SunPosition, loc Location) (ghi, dni, dhi float64)

var registry = map[string]func(Options) skyModel{
	"ineichen":        ineichenPerez,
	"simple-ineichen": simpleIneichen,
	"bras":            bras,
	"asce":            asce,
}

// Models lists the registered model names in sorted order.
func Models() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewProvider returns the clear-sky provider registered under model.
func NewProvider(model string, opts Options) (Provider, error) {
	if model == "" {
		model = DefaultModel
	}
	build, ok := registry[model]
	if !ok {
		return nil, fmt.Errorf("%q: %w", model, ErrUnknownModel)
	}
	return &modelProvider{name: model, model: build(opts.withDefaults())}, nil
}

type modelProvider struct {
	name  string
	model skyModel
}

func (p *modelProvider) Name() string {
	return p.name
}

func (p *modelProvider) ClearSky(ctx context.Context, loc Location, times []time.Time) ([]Irradiance, error) {
	out := make([]Irradiance, len(times))
	for i, t := range times {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pos := Position(t, loc)
		out[i] = Irradiance{Time: t, Position: pos}
		if pos.ApparentElevationDeg <= 0 {
			continue
		}

		ghi, dni, dhi := p.model(pos, loc)
		out[i].GHI = nonNegative(ghi)
		out[i].DNI = nonNegative(dni)
		out[i].DHI = nonNegative(dhi)
	}
	return out, nil
}

// GHI extracts the global horizontal component of each sample.
func GHI(samples []Irradiance) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.GHI
	}
	return out
}

func nonNegative(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }
