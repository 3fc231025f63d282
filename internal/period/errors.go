package period

import (
	"errors"
	"fmt"
)

// ErrConstruction is wrapped by every error returned when a Period cannot be built.
var ErrConstruction = errors.New("period: invalid period")

var (
	// ErrEndBeforeStart indicates the normalized end falls before the start.
	ErrEndBeforeStart = fmt.Errorf("%w: end before start", ErrConstruction)
	// ErrMissingEnd indicates no end boundary was supplied.
	ErrMissingEnd = fmt.Errorf("%w: missing end", ErrConstruction)
	// ErrMissingStart indicates no start boundary was supplied.
	ErrMissingStart = fmt.Errorf("%w: missing start", ErrConstruction)
	// ErrInvalidBoundary indicates a boundary could not be read as a day or an instant.
	ErrInvalidBoundary = fmt.Errorf("%w: invalid boundary", ErrConstruction)
)

// ErrDeserialization is wrapped by every error returned when a serialized period is rejected.
var ErrDeserialization = errors.New("period: invalid record")

// ErrInvalidUnit indicates an offset unit that is not recognised.
var ErrInvalidUnit = errors.New("period: invalid unit")
