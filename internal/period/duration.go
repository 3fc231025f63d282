package period

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	hourNanos   = decimal.NewFromInt(int64(time.Hour))
	secondNanos = decimal.NewFromInt(int64(time.Second))
)

// AsDays returns the number of calendar days p touches. A started day counts
// as a whole day and the result is never below one.
func (p Period) AsDays() int {
	loc := p.Location()
	s := p.Span()
	first := DayOf(s.Start.In(loc))
	end := DayOf(s.End.In(loc))
	if !isMidnight(s.End, loc) {
		end = end.AddDays(1)
	}
	return max(first.DaysUntil(end), 1)
}

// AsHours returns the number of clock hours p touches, counting a started
// hour as whole. The result is never below one.
func (p Period) AsHours() int {
	loc := p.Location()
	s := p.Span()
	start := floorHour(s.Start.In(loc))
	end := floorHour(s.End.In(loc))
	if end.Before(s.End) {
		end = end.Add(time.Hour)
	}
	return max(int(end.Sub(start)/time.Hour), 1)
}

// ExactSeconds returns the length of p in seconds without rounding,
// including any fractional nanoseconds.
func (p Period) ExactSeconds() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Span().Duration())).Div(secondNanos)
}

// ExactHours returns the length of p in hours without rounding to whole
// hours. Lengths that are not a terminating decimal of an hour, such as 20
// minutes, are cut at decimal.DivisionPrecision places; use ExactSeconds
// when full precision matters.
func (p Period) ExactHours() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Span().Duration())).Div(hourNanos)
}

func floorHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
}
