package period

// SetFullDays returns p converted to full days when full is true, or to
// precise instants otherwise. Converting to the current granularity returns p.
func (p Period) SetFullDays(full bool) Period {
	if full {
		return p.ToFullDays()
	}
	return p.ToPrecise(false)
}

// ToFullDays returns the full-day period covering p. An end exactly on
// midnight closes the previous day.
func (p Period) ToFullDays() Period {
	if p.granularity == FullDays {
		return p
	}
	loc := p.Location()
	first := DayOf(p.start.In(loc))
	last := DayOf(p.end.In(loc))
	if isMidnight(p.end, loc) {
		last = last.AddDays(-1)
	}
	if last.Before(first) {
		last = first
	}
	return Period{granularity: FullDays, first: first, last: last, loc: loc}
}

// ToPrecise returns p as a precise period. With midday false the instants are
// those of Span. With midday true the start is noon of the first day and the
// end is noon of the last day.
func (p Period) ToPrecise(midday bool) Period {
	if p.granularity == Precise {
		return p
	}
	loc := p.Location()
	if midday {
		return Period{
			granularity: Precise,
			start:       p.first.At(12, 0, 0, loc),
			end:         p.last.At(12, 0, 0, loc),
			loc:         loc,
		}
	}
	s := p.Span()
	return Period{granularity: Precise, start: s.Start, end: s.End, loc: loc}
}
