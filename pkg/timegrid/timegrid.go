// Package timegrid builds the fixed-cadence timestamp grid covering one local
// calendar day.
package timegrid

import (
	"errors"
	"fmt"
	"time"
)

// DefaultStep is the sampling interval used when none is configured.
const DefaultStep = 15 * time.Minute

var (
	// ErrBadStep is returned for steps that are non-positive or do not divide a day.
	ErrBadStep = errors.New("step must be positive and divide 24h evenly")
	// ErrNotMonotonic is returned by Validate when the grid is not equally spaced.
	ErrNotMonotonic = errors.New("timestamps are not strictly increasing and equally spaced")
)

// Date is a civil calendar day with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Midnight returns local 00:00 of the day in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Day returns every timestamp from local midnight of d up to, but excluding,
// the following local midnight, spaced step apart in absolute time.
// On days with a DST transition the grid is shorter or longer than 24h/step.
func Day(d Date, loc *time.Location, step time.Duration) ([]time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if step <= 0 || (24*time.Hour)%step != 0 {
		return nil, fmt.Errorf("%v: %w", step, ErrBadStep)
	}

	start := d.Midnight(loc)
	end := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, loc)

	points := make([]time.Time, 0, int(end.Sub(start)/step))
	for t := start; t.Before(end); t = t.Add(step) {
		points = append(points, t)
	}
	return points, nil
}

// Validate checks that ts is strictly increasing with a constant spacing.
func Validate(ts []time.Time) error {
	if len(ts) < 2 {
		return nil
	}
	step := ts[1].Sub(ts[0])
	if step <= 0 {
		return ErrNotMonotonic
	}
	for i := 2; i < len(ts); i++ {
		if ts[i].Sub(ts[i-1]) != step {
			return fmt.Errorf("gap at index %d: %w", i, ErrNotMonotonic)
		}
	}
	return nil
}

// StepHours returns the spacing of a validated grid in hours, or 0 if the
// grid has fewer than two points.
func StepHours(ts []time.Time) float64 {
	if len(ts) < 2 {
		return 0
	}
	return ts[1].Sub(ts[0]).Hours()
}
