package scale

import (
	"time"
)

// Time maps an instant within [t0, t1] onto a continuous range.
type Time struct {
	t0, t1 time.Time
	lin    Linear
}

// NewTime returns a time scale from [t0, t1] to [r0, r1].
func NewTime(t0, t1 time.Time, r0, r1 float64) Time {
	return Time{
		t0:  t0,
		t1:  t1,
		lin: NewLinear(float64(t0.UnixNano()), float64(t1.UnixNano()), r0, r1),
	}
}

// Domain returns the input interval.
func (s Time) Domain() (time.Time, time.Time) { return s.t0, s.t1 }

// Range returns the output interval.
func (s Time) Range() (float64, float64) { return s.lin.Range() }

// Map converts an instant to a range value.
func (s Time) Map(t time.Time) float64 {
	return s.lin.Map(float64(t.UnixNano()))
}

// Invert converts a range value back to an instant, in the domain's location.
func (s Time) Invert(r float64) time.Time {
	return time.Unix(0, int64(s.lin.Invert(r))).In(s.t0.Location())
}

type interval struct {
	days, months, years int
	approx              time.Duration
}

var intervals = []interval{
	{days: 1, approx: 24 * time.Hour},
	{days: 2, approx: 48 * time.Hour},
	{days: 7, approx: 7 * 24 * time.Hour},
	{months: 1, approx: 30 * 24 * time.Hour},
	{months: 3, approx: 91 * 24 * time.Hour},
	{years: 1, approx: 365 * 24 * time.Hour},
}

// Ticks returns calendar-aligned instants inside the domain, using the finest
// interval that yields at most count ticks.
func (s Time) Ticks(count int) []time.Time {
	lo, hi := s.t0, s.t1
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if count <= 0 {
		return nil
	}

	span := hi.Sub(lo)
	iv := intervals[len(intervals)-1]
	for _, candidate := range intervals {
		if span/candidate.approx <= time.Duration(count) {
			iv = candidate
			break
		}
	}

	var ticks []time.Time
	for t := iv.ceil(lo); !t.After(hi); t = iv.next(t) {
		ticks = append(ticks, t)
	}
	return ticks
}

func (iv interval) ceil(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	var c time.Time
	switch {
	case iv.years > 0:
		c = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case iv.months > 0:
		c = time.Date(y, m-time.Month((int(m)-1)%iv.months), 1, 0, 0, 0, 0, loc)
	case iv.days == 7:
		c = time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	default:
		c = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	for c.Before(t) {
		c = iv.next(c)
	}
	return c
}

func (iv interval) next(t time.Time) time.Time {
	return t.AddDate(iv.years, iv.months, iv.days)
}

// FormatTick labels a tick the way calendar axes usually do: the year at a year
// boundary, the month name at a month boundary, otherwise month and day.
func FormatTick(t time.Time) string {
	switch {
	case t.YearDay() == 1:
		return t.Format("2006")
	case t.Day() == 1:
		return t.Format("January")
	default:
		return t.Format("Jan 02")
	}
}
