package period

import "time"

// IsSame reports whether p and o have the same granularity and equal
// boundaries: equal days for full-day periods, equal instants otherwise.
func (p Period) IsSame(o Period) bool {
	if p.granularity != o.granularity {
		return false
	}
	if p.granularity == FullDays {
		return p.first.Equal(o.first) && p.last.Equal(o.last)
	}
	return p.start.Equal(o.start) && p.end.Equal(o.end)
}

// IsFullDaysLike reports whether p behaves like a full-day period: either it
// is one, or both of its instants sit exactly on midnight.
func (p Period) IsFullDaysLike() bool {
	if p.granularity == FullDays {
		return true
	}
	loc := p.Location()
	return isMidnight(p.start, loc) && isMidnight(p.end, loc)
}

// IsBefore reports whether p has ended at or before t.
func (p Period) IsBefore(t time.Time) bool {
	return !p.Span().End.After(t)
}

// IsBeforeDay reports whether p has ended at or before midnight of d.
func (p Period) IsBeforeDay(d Day) bool {
	return p.IsBefore(d.In(p.Location()))
}

// IsBeforePeriod reports whether p ends at or before o starts.
func (p Period) IsBeforePeriod(o Period) bool {
	return p.IsBefore(o.Span().Start)
}

// IsBeforeOrDuring reports whether p starts at or before t.
func (p Period) IsBeforeOrDuring(t time.Time) bool {
	return !p.Span().Start.After(t)
}

// IsBeforeOrDuringDay reports whether p starts at or before midnight of d.
func (p Period) IsBeforeOrDuringDay(d Day) bool {
	return p.IsBeforeOrDuring(d.In(p.Location()))
}

// IsBeforeOrDuringPeriod reports whether p starts at or before o starts.
func (p Period) IsBeforeOrDuringPeriod(o Period) bool {
	return p.IsBeforeOrDuring(o.Span().Start)
}

// IsOngoing reports whether now falls within p.
func (p Period) IsOngoing(now time.Time) bool {
	return p.Span().Contains(now)
}

// IsPast reports whether p is over at now.
func (p Period) IsPast(now time.Time) bool {
	return p.IsBefore(now)
}

// IsPastOrOngoing reports whether p has started at now.
func (p Period) IsPastOrOngoing(now time.Time) bool {
	return p.IsBeforeOrDuring(now)
}

// Overlaps reports whether p and o share any instant. A period ending exactly
// when another begins does not overlap it.
func (p Period) Overlaps(o Period) bool {
	return p.Span().Overlaps(o.Span())
}

// Contains reports whether t falls within p.
func (p Period) Contains(t time.Time) bool {
	return p.Span().Contains(t)
}

// ContainsPeriod reports whether every instant of o falls within p.
func (p Period) ContainsPeriod(o Period) bool {
	s, other := p.Span(), o.Span()
	return !other.Start.Before(s.Start) && !other.End.After(s.End)
}
