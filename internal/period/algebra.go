package period

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the step used by Offset.
type Unit uint8

// Offset units. Month and year steps follow time.AddDate normalization.
const (
	UnitMinute Unit = iota + 1
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = map[Unit]string{
	UnitMinute: "minute",
	UnitHour:   "hour",
	UnitDay:    "day",
	UnitWeek:   "week",
	UnitMonth:  "month",
	UnitYear:   "year",
}

// ParseUnit reads a unit name such as "hour" or "days".
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for u, n := range unitNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

func (u Unit) shift(t time.Time, n int) (time.Time, error) {
	switch u {
	case UnitMinute:
		return t.Add(time.Duration(n) * time.Minute), nil
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour), nil
	case UnitDay:
		return t.AddDate(0, 0, n), nil
	case UnitWeek:
		return t.AddDate(0, 0, 7*n), nil
	case UnitMonth:
		return t.AddDate(0, n, 0), nil
	case UnitYear:
		return t.AddDate(n, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidUnit, u)
}

// Merge returns the smallest period containing both p and o. The result is
// full-day only when both inputs are.
func (p Period) Merge(o Period) Period {
	loc := p.Location()
	if p.granularity == FullDays && o.granularity == FullDays {
		return Period{
			granularity: FullDays,
			first:       minDay(p.first, o.first),
			last:        maxDay(p.last, o.last),
			loc:         loc,
		}
	}
	a, b := p.Span(), o.Span()
	start, end := a.Start, a.End
	if b.Start.Before(start) {
		start = b.Start
	}
	if b.End.After(end) {
		end = b.End
	}
	return Period{granularity: Precise, start: start.In(loc), end: end.In(loc), loc: loc}
}

// Narrow returns the intersection of p and o. ok is false when they do not
// overlap.
func (p Period) Narrow(o Period) (Period, bool) {
	if !p.Overlaps(o) {
		return Period{}, false
	}
	loc := p.Location()
	if p.granularity == FullDays && o.granularity == FullDays {
		return Period{
			granularity: FullDays,
			first:       maxDay(p.first, o.first),
			last:        minDay(p.last, o.last),
			loc:         loc,
		}, true
	}
	a, b := p.Span(), o.Span()
	start, end := a.Start, a.End
	if b.Start.After(start) {
		start = b.Start
	}
	if b.End.Before(end) {
		end = b.End
	}
	return Period{granularity: Precise, start: start.In(loc), end: end.In(loc), loc: loc}, true
}

// Offset widens p by amount units on both sides, keeping its granularity.
// Sub-day units applied to a full-day period extend it to every day the
// widened span touches. A negative amount shrinks p and fails once the
// boundaries cross.
func (p Period) Offset(amount int, unit Unit) (Period, error) {
	loc := p.Location()
	if p.granularity == FullDays && unit >= UnitDay {
		first, err := unit.shift(p.first.In(time.UTC), -amount)
		if err != nil {
			return Period{}, err
		}
		last, err := unit.shift(p.last.In(time.UTC), amount)
		if err != nil {
			return Period{}, err
		}
		return NewDays(DayOf(first), DayOf(last), WithLocation(loc))
	}
	s := p.Span()
	start, err := unit.shift(s.Start, -amount)
	if err != nil {
		return Period{}, err
	}
	end, err := unit.shift(s.End, amount)
	if err != nil {
		return Period{}, err
	}
	widened, err := NewPrecise(start.In(loc), end)
	if err != nil {
		return Period{}, err
	}
	if p.granularity == FullDays {
		return widened.ToFullDays(), nil
	}
	return widened, nil
}
