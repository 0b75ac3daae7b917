package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone %s unavailable: %v", name, err)
	}
	return loc
}

func TestDayPointCounts(t *testing.T) {
	oslo := mustLoad(t, "Europe/Oslo")

	tests := []struct {
		name     string
		date     Date
		step     time.Duration
		expected int
	}{
		{name: "summer solstice 15 min", date: Date{2024, time.June, 21}, step: 15 * time.Minute, expected: 96},
		{name: "hourly", date: Date{2024, time.June, 21}, step: time.Hour, expected: 24},
		{name: "spring forward", date: Date{2024, time.March, 31}, step: 15 * time.Minute, expected: 92},
		{name: "fall back", date: Date{2024, time.October, 27}, step: 15 * time.Minute, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := Day(tt.date, oslo, tt.step)
			require.NoError(t, err)
			assert.Len(t, ts, tt.expected)
			assert.NoError(t, Validate(ts))
		})
	}
}

func TestDayBounds(t *testing.T) {
	oslo := mustLoad(t, "Europe/Oslo")

	ts, err := Day(Date{2024, time.June, 21}, oslo, DefaultStep)
	require.NoError(t, err)
	require.Len(t, ts, 96)

	assert.Equal(t, "2024-06-21 00:00:00+02:00", ts[0].Format("2006-01-02 15:04:05-07:00"))
	assert.Equal(t, "2024-06-21 23:45:00+02:00", ts[95].Format("2006-01-02 15:04:05-07:00"))
	assert.Equal(t, 0.25, StepHours(ts))
}

func TestDayBadStep(t *testing.T) {
	for _, step := range []time.Duration{0, -time.Minute, 7 * time.Minute} {
		_, err := Day(Date{2024, time.June, 21}, time.UTC, step)
		assert.ErrorIs(t, err, ErrBadStep, "step %v", step)
	}
}

func TestDayNilLocation(t *testing.T) {
	ts, err := Day(Date{2024, time.January, 1}, nil, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts[0].Location())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-21")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, time.June, 21}, d)
	assert.Equal(t, "2024-06-21", d.String())

	_, err = ParseDate("21/06/2024")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]time.Time{base}))
	assert.ErrorIs(t, Validate([]time.Time{base, base}), ErrNotMonotonic)
	assert.ErrorIs(t, Validate([]time.Time{base, base.Add(time.Minute), base.Add(3 * time.Minute)}), ErrNotMonotonic)
}
