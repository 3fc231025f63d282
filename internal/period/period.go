// Package period implements the Period value shared by availability, booking,
// billing and inventory code: an immutable interval that is either a run of
// whole calendar days or a pair of exact instants.
package period

import (
	"strings"
	"time"
)

// Granularity selects how the boundaries of a Period are interpreted.
type Granularity uint8

const (
	// Precise periods are bounded by exact instants.
	Precise Granularity = iota
	// FullDays periods are bounded by calendar days, the last one included.
	FullDays
)

// String returns the granularity name.
func (g Granularity) String() string {
	if g == FullDays {
		return "full_days"
	}
	return "precise"
}

// Span is the instant view of a Period: the half-open interval [Start, End).
type Span struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside [Start, End).
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// Overlaps reports whether s and o share at least one instant. Touching spans do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && s.End.After(o.Start)
}

// Duration returns End minus Start.
func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Period is an immutable interval. Full-day periods carry their first and last
// calendar day; precise periods carry their start and end instants. The zero
// value is an empty precise period at the zero instant.
type Period struct {
	granularity Granularity

	first Day
	last  Day

	start time.Time
	end   time.Time

	loc *time.Location
}

// Option adjusts how boundaries are read.
type Option func(*options)

type options struct {
	loc    *time.Location
	locSet bool
}

// WithLocation sets the location used to turn calendar days into instants and
// to read date-time strings without an offset. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
			o.locSet = true
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{loc: time.UTC}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewDays builds a full-day period covering first through last inclusive.
func NewDays(first, last Day, opts ...Option) (Period, error) {
	o := buildOptions(opts)
	if first.IsZero() {
		return Period{}, ErrMissingStart
	}
	if last.IsZero() {
		return Period{}, ErrMissingEnd
	}
	if last.Before(first) {
		return Period{}, ErrEndBeforeStart
	}
	return Period{granularity: FullDays, first: first, last: last, loc: o.loc}, nil
}

// NewPrecise builds a precise period from start to end. The period adopts the
// location of start.
func NewPrecise(start, end time.Time) (Period, error) {
	if start.IsZero() {
		return Period{}, ErrMissingStart
	}
	if end.IsZero() {
		return Period{}, ErrMissingEnd
	}
	if end.Before(start) {
		return Period{}, ErrEndBeforeStart
	}
	loc := start.Location()
	return Period{
		granularity: Precise,
		start:       start.Round(0),
		end:         end.In(loc).Round(0),
		loc:         loc,
	}, nil
}

// New builds a period from loosely typed boundaries. Each boundary may be a
// string, time.Time, *time.Time, Day or *Day. With fullDays set both are read
// as calendar days, otherwise as instants.
func New(start, end any, fullDays bool, opts ...Option) (Period, error) {
	o := buildOptions(opts)
	if !o.locSet {
		if t, ok := timeOf(start); ok {
			o.loc = t.Location()
		}
	}
	if fullDays {
		first, err := toDay(start, o.loc)
		if err != nil {
			return Period{}, boundaryErr(err, ErrMissingStart)
		}
		last, err := toDay(end, o.loc)
		if err != nil {
			return Period{}, boundaryErr(err, ErrMissingEnd)
		}
		return NewDays(first, last, WithLocation(o.loc))
	}
	s, err := toInstant(start, o.loc)
	if err != nil {
		return Period{}, boundaryErr(err, ErrMissingStart)
	}
	e, err := toInstant(end, o.loc)
	if err != nil {
		return Period{}, boundaryErr(err, ErrMissingEnd)
	}
	return NewPrecise(s.In(o.loc), e)
}

// Parse builds a period from two boundary strings.
func Parse(start, end string, fullDays bool, opts ...Option) (Period, error) {
	return New(start, end, fullDays, opts...)
}

// Granularity returns the granularity fixed at construction.
func (p Period) Granularity() Granularity {
	return p.granularity
}

// IsFullDays reports whether p is bounded by calendar days.
func (p Period) IsFullDays() bool {
	return p.granularity == FullDays
}

// Location returns the location used for day boundaries.
func (p Period) Location() *time.Location {
	if p.loc == nil {
		return time.UTC
	}
	return p.loc
}

// Days returns the first and last included day of a full-day period. ok is
// false for precise periods.
func (p Period) Days() (first, last Day, ok bool) {
	if p.granularity != FullDays {
		return Day{}, Day{}, false
	}
	return p.first, p.last, true
}

// Instants returns the boundaries of a precise period. ok is false for
// full-day periods.
func (p Period) Instants() (start, end time.Time, ok bool) {
	if p.granularity != Precise {
		return time.Time{}, time.Time{}, false
	}
	return p.start, p.end, true
}

// Span returns p as instants with an exclusive end. A full-day period ends at
// midnight of the day after its last day.
func (p Period) Span() Span {
	if p.granularity == FullDays {
		loc := p.Location()
		return Span{Start: p.first.In(loc), End: p.last.AddDays(1).In(loc)}
	}
	return Span{Start: p.start, End: p.end}
}

// Start returns the start boundary as YYYY-MM-DD for full-day periods and as
// YYYY-MM-DD HH:mm:ss for precise periods.
func (p Period) Start() string {
	if p.granularity == FullDays {
		return p.first.String()
	}
	return formatInstant(p.start, p.Location())
}

// End returns the end boundary in the same form as Start. For full-day
// periods this is the last included day.
func (p Period) End() string {
	if p.granularity == FullDays {
		return p.last.String()
	}
	return formatInstant(p.end, p.Location())
}

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool {
	return p.granularity == Precise && p.start.IsZero() && p.end.IsZero()
}

func (p Period) String() string {
	var b strings.Builder
	b.WriteString(p.Start())
	b.WriteString(" .. ")
	b.WriteString(p.End())
	if p.granularity == FullDays {
		b.WriteString(" (full days)")
	}
	return b.String()
}
