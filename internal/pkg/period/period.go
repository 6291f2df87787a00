package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day-granularity format used by the upstream API (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// Type is a named reporting period selectable on the dashboard.
type Type string

const (
	Today   Type = "today"
	Week    Type = "week"
	Month   Type = "month"
	Quarter Type = "quarter"
	Year    Type = "year"
	Custom  Type = "custom"
)

var (
	ErrUnknownPeriod         = errors.New("unknown period")
	ErrCustomRangeIncomplete = errors.New("custom period requires both start_date and end_date")
	ErrInvalidDate           = errors.New("invalid date")
)

// Selection is a period tag plus, for Custom, the caller-supplied dates.
type Selection struct {
	Type  Type
	Start time.Time
	End   time.Time
}

// Range is an inclusive pair of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// StartDate returns the start formatted as yyyy-MM-dd.
func (r Range) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate returns the end formatted as yyyy-MM-dd.
func (r Range) EndDate() string {
	return r.End.Format(DateLayout)
}

// Days returns the number of calendar days covered, both ends included.
// A reversed custom range yields zero.
func (r Range) Days() int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func (r Range) String() string {
	return "[" + r.StartDate() + ", " + r.EndDate() + "]"
}

// Resolver maps a Selection to a concrete Range relative to Now.
// Now is read on every call, so results change across midnight.
type Resolver struct {
	Now      func() time.Time
	Location *time.Location
}

// NewResolver returns a Resolver on the wall clock in loc (time.Local when nil).
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{Now: time.Now, Location: loc}
}

// Resolve returns the inclusive date range for sel.
func (r *Resolver) Resolve(sel Selection) (Range, error) {
	if sel.Type == Custom {
		if sel.Start.IsZero() || sel.End.IsZero() {
			return Range{}, ErrCustomRangeIncomplete
		}
		return Range{Start: sel.Start, End: sel.End}, nil
	}

	today := r.today()
	var start time.Time

	switch sel.Type {
	case Today:
		start = today
	case Week:
		// ISO week: Monday is the first day
		offset := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -offset)
	case Month:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case Quarter:
		firstMonth := time.Month((int(today.Month())-1)/3*3 + 1)
		start = time.Date(today.Year(), firstMonth, 1, 0, 0, 0, 0, today.Location())
	case Year:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, sel.Type)
	}

	return Range{Start: start, End: today}, nil
}

func (r *Resolver) today() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	t := now().In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseSelection builds a Selection from request values. An empty tag means Today.
// Dates are only parsed for Custom and must be yyyy-MM-dd.
func ParseSelection(tag, startDate, endDate string, loc *time.Location) (Selection, error) {
	if loc == nil {
		loc = time.Local
	}

	t := Type(strings.ToLower(strings.TrimSpace(tag)))
	if t == "" {
		t = Today
	}

	switch t {
	case Today, Week, Month, Quarter, Year:
		return Selection{Type: t}, nil
	case Custom:
	default:
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, tag)
	}

	sel := Selection{Type: Custom}
	if startDate != "" {
		start, err := time.ParseInLocation(DateLayout, startDate, loc)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: start_date %q: %w", ErrInvalidDate, startDate, err)
		}
		sel.Start = start
	}
	if endDate != "" {
		end, err := time.ParseInLocation(DateLayout, endDate, loc)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: end_date %q: %w", ErrInvalidDate, endDate, err)
		}
		sel.End = end
	}
	return sel, nil
}
