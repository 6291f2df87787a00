package period

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedResolver(t *testing.T, value string) *Resolver {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	require.NoError(t, err)
	return &Resolver{
		Now:      func() time.Time { return now },
		Location: time.UTC,
	}
}

func TestResolver_Resolve_Thursday(t *testing.T) {
	// 2024-03-14 is a Thursday
	r := fixedResolver(t, "2024-03-14 16:30")

	cases := []struct {
		period Type
		start  string
		end    string
	}{
		{Today, "2024-03-14", "2024-03-14"},
		{Week, "2024-03-11", "2024-03-14"},
		{Month, "2024-03-01", "2024-03-14"},
		{Quarter, "2024-01-01", "2024-03-14"},
		{Year, "2024-01-01", "2024-03-14"},
	}
	for _, c := range cases {
		got, err := r.Resolve(Selection{Type: c.period})
		require.NoError(t, err, c.period)
		assert.Equal(t, c.start, got.StartDate(), c.period)
		assert.Equal(t, c.end, got.EndDate(), c.period)
	}
}

func TestResolver_Resolve_WeekBoundaries(t *testing.T) {
	cases := []struct {
		now   string
		start string
	}{
		{"2024-03-11 00:00", "2024-03-11"}, // Monday is its own week start
		{"2024-03-17 23:59", "2024-03-11"}, // Sunday belongs to the previous Monday
		{"2024-01-03 09:00", "2024-01-01"},
		{"2023-01-01 12:00", "2022-12-26"}, // crosses a year boundary
	}
	for _, c := range cases {
		got, err := fixedResolver(t, c.now).Resolve(Selection{Type: Week})
		require.NoError(t, err)
		assert.Equal(t, c.start, got.StartDate(), c.now)
	}
}

func TestResolver_Resolve_QuarterStarts(t *testing.T) {
	cases := map[string]string{
		"2024-02-29 10:00": "2024-01-01",
		"2024-05-15 10:00": "2024-04-01",
		"2024-09-30 10:00": "2024-07-01",
		"2024-10-01 10:00": "2024-10-01",
		"2024-12-31 10:00": "2024-10-01",
	}
	for now, want := range cases {
		got, err := fixedResolver(t, now).Resolve(Selection{Type: Quarter})
		require.NoError(t, err)
		assert.Equal(t, want, got.StartDate(), now)
	}
}

func TestResolver_Resolve_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, 3, 14, 21, 0, 0, 0, time.UTC) // already the 15th at UTC+5
	r := &Resolver{Now: func() time.Time { return now }, Location: loc}

	got, err := r.Resolve(Selection{Type: Today})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got.StartDate())
}

func TestResolver_Resolve_ReadsClockEveryCall(t *testing.T) {
	now := time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)
	r := &Resolver{Now: func() time.Time { return now }, Location: time.UTC}

	before, err := r.Resolve(Selection{Type: Today})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	after, err := r.Resolve(Selection{Type: Today})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-14", before.StartDate())
	assert.Equal(t, "2024-03-15", after.StartDate())
}

func TestResolver_Resolve_CustomPassesThrough(t *testing.T) {
	r := fixedResolver(t, "2024-03-14 10:00")
	start := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// reversed ranges are the caller's responsibility
	got, err := r.Resolve(Selection{Type: Custom, Start: start, End: end})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", got.StartDate())
	assert.Equal(t, "2024-03-01", got.EndDate())
	assert.Equal(t, 0, got.Days())
}

func TestResolver_Resolve_Errors(t *testing.T) {
	r := fixedResolver(t, "2024-03-14 10:00")

	_, err := r.Resolve(Selection{Type: Custom, Start: time.Now()})
	assert.ErrorIs(t, err, ErrCustomRangeIncomplete)

	_, err = r.Resolve(Selection{Type: "fortnight"})
	assert.True(t, errors.Is(err, ErrUnknownPeriod))
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	r := fixedResolver(t, "2024-03-14 10:00")
	for _, p := range []Type{Today, Week, Month, Quarter, Year} {
		first, err := r.Resolve(Selection{Type: p})
		require.NoError(t, err)
		second, err := r.Resolve(Selection{Type: p})
		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	}
}

func TestRange_Days(t *testing.T) {
	r := fixedResolver(t, "2024-03-14 10:00")
	got, err := r.Resolve(Selection{Type: Week})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Days())

	got, err = r.Resolve(Selection{Type: Today})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Days())
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("", "", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Today, sel.Type)

	sel, err = ParseSelection(" Week ", "2024-01-01", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, Week, sel.Type)
	assert.True(t, sel.Start.IsZero(), "dates are ignored for named periods")

	sel, err = ParseSelection("custom", "2024-03-01", "2024-03-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", sel.Start.Format(DateLayout))
	assert.Equal(t, "2024-03-02", sel.End.Format(DateLayout))

	_, err = ParseSelection("custom", "03/01/2024", "2024-03-02", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseSelection("decade", "", "", time.UTC)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}
