package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InstantLayout is the textual form of a precise boundary. Fractional seconds
// are appended only when present.
const InstantLayout = "2006-01-02 15:04:05"

const instantFormat = "2006-01-02 15:04:05.999999999"

// zonedFormat carries the UTC offset so instants outside UTC survive a round
// trip through a record.
const zonedFormat = "2006-01-02 15:04:05.999999999Z07:00"

// instantLayouts are tried in order for strings without a UTC offset.
var instantLayouts = []string{
	InstantLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	DayLayout,
}

var errMissing = errors.New("missing boundary")

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, zonedFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBoundary, s)
}

func parseDay(s string, loc *time.Location) (Day, error) {
	if d, err := ParseDay(s); err == nil {
		return d, nil
	}
	t, err := parseInstant(s, loc)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

func toInstant(v any, loc *time.Location) (time.Time, error) {
	switch b := v.(type) {
	case nil:
		return time.Time{}, errMissing
	case string:
		if strings.TrimSpace(b) == "" {
			return time.Time{}, errMissing
		}
		return parseInstant(b, loc)
	case time.Time:
		if b.IsZero() {
			return time.Time{}, errMissing
		}
		return b, nil
	case *time.Time:
		if b == nil || b.IsZero() {
			return time.Time{}, errMissing
		}
		return *b, nil
	case Day:
		if b.IsZero() {
			return time.Time{}, errMissing
		}
		return b.In(loc), nil
	case *Day:
		if b == nil || b.IsZero() {
			return time.Time{}, errMissing
		}
		return b.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidBoundary, v)
}

func toDay(v any, loc *time.Location) (Day, error) {
	switch b := v.(type) {
	case string:
		if strings.TrimSpace(b) == "" {
			return Day{}, errMissing
		}
		return parseDay(b, loc)
	case Day:
		if b.IsZero() {
			return Day{}, errMissing
		}
		return b, nil
	case *Day:
		if b == nil || b.IsZero() {
			return Day{}, errMissing
		}
		return *b, nil
	}
	t, err := toInstant(v, loc)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// timeOf extracts an instant boundary so New can adopt its location.
func timeOf(v any) (time.Time, bool) {
	switch b := v.(type) {
	case time.Time:
		return b, !b.IsZero()
	case *time.Time:
		if b != nil && !b.IsZero() {
			return *b, true
		}
	}
	return time.Time{}, false
}

func boundaryErr(err, missing error) error {
	if errors.Is(err, errMissing) {
		return missing
	}
	return err
}

func formatInstant(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(instantFormat)
}

// serializeInstant is formatInstant plus the offset for locations other
// than UTC.
func serializeInstant(t time.Time, loc *time.Location) string {
	if loc == time.UTC {
		return formatInstant(t, loc)
	}
	return t.In(loc).Format(zonedFormat)
}

func isMidnight(t time.Time, loc *time.Location) bool {
	t = t.In(loc)
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
