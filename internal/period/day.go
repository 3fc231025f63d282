package period

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// DayLayout is the textual form of a calendar day.
const DayLayout = "2006-01-02"

// Day is a Gregorian calendar date without time of day or location.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay returns the given date, normalizing overflow the way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf truncates t to its calendar date in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// ParseDay reads a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Date returns the year, month and day of d.
func (d Day) Date() (int, time.Month, int) {
	return d.year, d.month, d.day
}

// In returns midnight of d in loc.
func (d Day) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// At returns the instant on d at the given clock time in loc.
func (d Day) At(hour, min, sec int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, hour, min, sec, 0, loc)
}

// AddDays returns d shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.day+n)
}

// DaysUntil returns the number of calendar days from d to other.
func (d Day) DaysUntil(other Day) int {
	// UTC midnights are exactly 24h apart, so the division is exact.
	return int(other.In(time.UTC).Sub(d.In(time.UTC)) / (24 * time.Hour))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Day) Compare(other Day) int {
	switch {
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(d.month, other.month)
	default:
		return cmp.Compare(d.day, other.day)
	}
}

// Before reports whether d is strictly before other.
func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same date.
func (d Day) Equal(other Day) bool { return d == other }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d == Day{} }

// String formats d as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func minDay(a, b Day) Day {
	if b.Before(a) {
		return b
	}
	return a
}

func maxDay(a, b Day) Day {
	if b.After(a) {
		return b
	}
	return a
}
