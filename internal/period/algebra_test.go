package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFullDaysRollsMidnightEndBack(t *testing.T) {
	p := mustParse(t, "2024-01-01 00:00:00", "2024-01-06 00:00:00", false)
	days := p.SetFullDays(true)

	require.True(t, days.IsFullDays())
	assert.Equal(t, "2024-01-01", days.Start())
	assert.Equal(t, "2024-01-05", days.End())
	assert.True(t, days.IsSame(mustParse(t, "2024-01-01", "2024-01-05", true)))
	assert.False(t, p.IsFullDays(), "source must not change")
}

func TestToFullDaysKeepsPartialEndDay(t *testing.T) {
	p := mustParse(t, "2024-01-01 22:00:00", "2024-01-03 00:00:01", false)
	days := p.ToFullDays()
	assert.Equal(t, "2024-01-01", days.Start())
	assert.Equal(t, "2024-01-03", days.End())
}

func TestToFullDaysClampsEmptyMidnightPeriod(t *testing.T) {
	p := mustParse(t, "2024-01-04 00:00:00", "2024-01-04 00:00:00", false)
	days := p.ToFullDays()
	assert.Equal(t, "2024-01-04", days.Start())
	assert.Equal(t, "2024-01-04", days.End())
}

func TestToPrecise(t *testing.T) {
	p := mustParse(t, "2024-01-01", "2024-01-03", true)

	exact := p.ToPrecise(false)
	require.False(t, exact.IsFullDays())
	assert.Equal(t, "2024-01-01 00:00:00", exact.Start())
	assert.Equal(t, "2024-01-04 00:00:00", exact.End())
	assert.True(t, exact.IsFullDaysLike())
	assert.True(t, exact.ToFullDays().IsSame(p))

	midday := p.ToPrecise(true)
	assert.Equal(t, "2024-01-01 12:00:00", midday.Start())
	assert.Equal(t, "2024-01-03 12:00:00", midday.End())
	assert.False(t, midday.IsFullDaysLike())
	assert.True(t, midday.ToFullDays().IsSame(p))
}

func TestConversionToOwnGranularityIsIdentity(t *testing.T) {
	for _, p := range samplePeriods(t) {
		assert.True(t, p.SetFullDays(p.IsFullDays()).IsSame(p), p.String())
	}
}

func TestIsSameRequiresGranularity(t *testing.T) {
	days := mustParse(t, "2024-01-01", "2024-01-01", true)
	instants := mustParse(t, "2024-01-01 00:00:00", "2024-01-02 00:00:00", false)

	assert.Equal(t, days.Span(), instants.Span())
	assert.False(t, days.IsSame(instants))
	assert.True(t, instants.IsFullDaysLike())
	assert.True(t, days.IsFullDaysLike())
}

func TestOverlapsTouchingFullDays(t *testing.T) {
	// Both periods include 2024-01-03.
	a := mustParse(t, "2024-01-01", "2024-01-03", true)
	b := mustParse(t, "2024-01-03", "2024-01-05", true)
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	c := mustParse(t, "2024-01-01", "2024-01-02", true)
	assert.False(t, c.Overlaps(b))
	assert.False(t, b.Overlaps(c))
}

func TestOverlapsTouchingInstants(t *testing.T) {
	a := mustParse(t, "2024-01-01 10:00:00", "2024-01-01 12:00:00", false)
	b := mustParse(t, "2024-01-01 12:00:00", "2024-01-01 14:00:00", false)
	assert.False(t, a.Overlaps(b))
	assert.True(t, a.IsBeforePeriod(b))

	days := mustParse(t, "2024-01-01", "2024-01-01", true)
	night := mustParse(t, "2024-01-01 23:00:00", "2024-01-02 01:00:00", false)
	assert.True(t, days.Overlaps(night))
	next := mustParse(t, "2024-01-02 00:00:00", "2024-01-02 01:00:00", false)
	assert.False(t, days.Overlaps(next))
}

func TestOverlapIsSymmetric(t *testing.T) {
	periods := samplePeriods(t)
	for _, a := range periods {
		for _, b := range periods {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s / %s", a, b)
		}
	}
}

func TestMergeFullDays(t *testing.T) {
	a := mustParse(t, "2024-01-10", "2024-01-12", true)
	b := mustParse(t, "2024-01-01", "2024-01-03", true)

	merged := a.Merge(b)
	require.True(t, merged.IsFullDays())
	assert.Equal(t, "2024-01-01", merged.Start())
	assert.Equal(t, "2024-01-12", merged.End())
	assert.True(t, merged.IsSame(b.Merge(a)))
}

func TestMergeMixedIsPrecise(t *testing.T) {
	a := mustParse(t, "2024-01-01", "2024-01-02", true)
	b := mustParse(t, "2024-01-02 10:00:00", "2024-01-05 08:00:00", false)

	merged := a.Merge(b)
	require.False(t, merged.IsFullDays())
	assert.Equal(t, "2024-01-01 00:00:00", merged.Start())
	assert.Equal(t, "2024-01-05 08:00:00", merged.End())
}

func TestMergeContainsBoth(t *testing.T) {
	periods := samplePeriods(t)
	for _, a := range periods {
		for _, b := range periods {
			merged := a.Merge(b)
			assert.True(t, merged.ContainsPeriod(a), "%s should contain %s", merged, a)
			assert.True(t, merged.ContainsPeriod(b), "%s should contain %s", merged, b)
			reverse := b.Merge(a).Span()
			assert.True(t, merged.Span().Start.Equal(reverse.Start) && merged.Span().End.Equal(reverse.End))
		}
	}
}

func TestNarrowFullDays(t *testing.T) {
	a := mustParse(t, "2024-01-01", "2024-01-10", true)
	b := mustParse(t, "2024-01-05", "2024-01-20", true)

	narrowed, ok := a.Narrow(b)
	require.True(t, ok)
	assert.True(t, narrowed.IsSame(mustParse(t, "2024-01-05", "2024-01-10", true)))

	reverse, ok := b.Narrow(a)
	require.True(t, ok)
	assert.True(t, reverse.IsSame(narrowed))
}

func TestNarrowMixed(t *testing.T) {
	a := mustParse(t, "2024-01-01", "2024-01-02", true)
	b := mustParse(t, "2024-01-02 10:00:00", "2024-01-05 00:00:00", false)

	narrowed, ok := a.Narrow(b)
	require.True(t, ok)
	assert.False(t, narrowed.IsFullDays())
	assert.Equal(t, "2024-01-02 10:00:00", narrowed.Start())
	assert.Equal(t, "2024-01-03 00:00:00", narrowed.End())
}

func TestNarrowMatchesOverlaps(t *testing.T) {
	periods := samplePeriods(t)
	for _, a := range periods {
		for _, b := range periods {
			narrowed, ok := a.Narrow(b)
			require.Equal(t, a.Overlaps(b), ok, "%s / %s", a, b)
			if !ok {
				continue
			}
			assert.True(t, a.ContainsPeriod(narrowed), "%s / %s -> %s", a, b, narrowed)
			assert.True(t, b.ContainsPeriod(narrowed), "%s / %s -> %s", a, b, narrowed)
		}
	}
}

func TestOffset(t *testing.T) {
	type subTest struct {
		name      string
		period    Period
		amount    int
		unit      Unit
		wantStart string
		wantEnd   string
	}

	subTests := []subTest{
		{"DaysOnFullDays", mustParse(t, "2024-01-10", "2024-01-12", true), 2, UnitDay, "2024-01-08", "2024-01-14"},
		{"WeekOnFullDays", mustParse(t, "2024-01-10", "2024-01-12", true), 1, UnitWeek, "2024-01-03", "2024-01-19"},
		{"HoursOnFullDaysWidenToDays", mustParse(t, "2024-01-10", "2024-01-12", true), 2, UnitHour, "2024-01-09", "2024-01-13"},
		{"MinutesOnPrecise", mustParse(t, "2024-01-10 10:00:00", "2024-01-10 12:00:00", false), 30, UnitMinute, "2024-01-10 09:30:00", "2024-01-10 12:30:00"},
		{"MonthOnPrecise", mustParse(t, "2024-03-15 08:00:00", "2024-03-16 08:00:00", false), 1, UnitMonth, "2024-02-15 08:00:00", "2024-04-16 08:00:00"},
		{"ShrinkPrecise", mustParse(t, "2024-01-10 10:00:00", "2024-01-10 12:00:00", false), -1, UnitHour, "2024-01-10 11:00:00", "2024-01-10 11:00:00"},
		{"YearOnFullDays", mustParse(t, "2024-02-29", "2024-02-29", true), 1, UnitYear, "2023-03-01", "2025-03-01"},
	}
	for _, subTest := range subTests {
		t.Run(subTest.name, func(t *testing.T) {
			got, err := subTest.period.Offset(subTest.amount, subTest.unit)
			require.NoError(t, err)
			assert.Equal(t, subTest.period.IsFullDays(), got.IsFullDays())
			assert.Equal(t, subTest.wantStart, got.Start())
			assert.Equal(t, subTest.wantEnd, got.End())
		})
	}
}

func TestOffsetErrors(t *testing.T) {
	p := mustParse(t, "2024-01-10 10:00:00", "2024-01-10 12:00:00", false)
	_, err := p.Offset(-2, UnitHour)
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	_, err = p.Offset(1, Unit(42))
	assert.ErrorIs(t, err, ErrInvalidUnit)

	days := mustParse(t, "2024-01-10", "2024-01-11", true)
	_, err = days.Offset(-1, UnitDay)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("Hours")
	require.NoError(t, err)
	assert.Equal(t, UnitHour, u)
	assert.Equal(t, "hour", u.String())

	u, err = ParseUnit("day")
	require.NoError(t, err)
	assert.Equal(t, UnitDay, u)

	_, err = ParseUnit("fortnight")
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestTemporalPredicates(t *testing.T) {
	p := mustParse(t, "2024-01-10 10:00:00", "2024-01-10 12:00:00", false)
	at := func(h, m int) time.Time { return time.Date(2024, 1, 10, h, m, 0, 0, time.UTC) }

	assert.False(t, p.IsOngoing(at(9, 59)))
	assert.True(t, p.IsOngoing(at(10, 0)))
	assert.True(t, p.IsOngoing(at(11, 59)))
	assert.False(t, p.IsOngoing(at(12, 0)))

	assert.False(t, p.IsPast(at(11, 59)))
	assert.True(t, p.IsPast(at(12, 0)))
	assert.True(t, p.IsBefore(at(12, 0)))

	assert.False(t, p.IsPastOrOngoing(at(9, 59)))
	assert.True(t, p.IsPastOrOngoing(at(10, 0)))
	assert.True(t, p.IsBeforeOrDuring(at(13, 0)))

	assert.True(t, p.Contains(at(10, 30)))
	assert.False(t, p.Contains(at(12, 0)))
}

func TestDayPredicates(t *testing.T) {
	p := mustParse(t, "2024-01-01", "2024-01-02", true)

	assert.True(t, p.IsBeforeDay(NewDay(2024, 1, 3)))
	assert.False(t, p.IsBeforeDay(NewDay(2024, 1, 2)))
	assert.True(t, p.IsBeforeOrDuringDay(NewDay(2024, 1, 1)))
	assert.False(t, p.IsBeforeOrDuringDay(NewDay(2023, 12, 31)))

	later := mustParse(t, "2024-01-03", "2024-01-04", true)
	assert.True(t, p.IsBeforePeriod(later))
	assert.False(t, later.IsBeforePeriod(p))
	assert.True(t, p.IsBeforeOrDuringPeriod(later))
	assert.False(t, later.IsBeforeOrDuringPeriod(p))

	now := time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC)
	assert.True(t, p.IsOngoing(now))
	assert.True(t, p.IsPast(now.Add(time.Second)))
}
