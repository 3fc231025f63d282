// Package windows stores named period selections ("saved windows") such as a
// venue's blackout dates or a customer's preferred rental window.
package windows

import (
	"errors"
	"strings"
	"time"

	"github.com/odyssey-erp/odyssey-rental/internal/period"
)

// Window is a named, saved period.
type Window struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Period    period.Period `json:"period"`
	CreatedAt time.Time     `json:"createdAt"`
}

// State filters windows relative to the current time.
type State string

const (
	StateAll      State = ""
	StateUpcoming State = "upcoming"
	StateOngoing  State = "ongoing"
	StatePast     State = "past"
)

// ParseState reads a state filter, defaulting to StateAll.
func ParseState(raw string) (State, error) {
	switch s := State(strings.ToLower(strings.TrimSpace(raw))); s {
	case StateAll, StateUpcoming, StateOngoing, StatePast:
		return s, nil
	}
	return StateAll, ErrInvalidState
}

// Matches reports whether p is in state s at now.
func (s State) Matches(p period.Period, now time.Time) bool {
	switch s {
	case StateUpcoming:
		return !p.IsPastOrOngoing(now)
	case StateOngoing:
		return p.IsOngoing(now)
	case StatePast:
		return p.IsPast(now)
	}
	return true
}

// ListFilter narrows List results.
type ListFilter struct {
	State State
	// Within, when set, keeps only windows overlapping it.
	Within *period.Period
}

var (
	// ErrNotFound indicates the window does not exist or could not be decoded.
	ErrNotFound = errors.New("windows: window not found")
	// ErrNameRequired indicates an empty window name.
	ErrNameRequired = errors.New("windows: name required")
	// ErrInvalidState indicates an unknown state filter.
	ErrInvalidState = errors.New("windows: invalid state filter")
)
