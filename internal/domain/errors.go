package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a caller contract violation: an empty depot set
// or a non-finite coordinate. Index is -1 when the error is not tied to a
// single point.
type InvalidInputError struct {
	Field  string
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s[%d]: %s", e.Field, e.Index, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// MaxCoordinate bounds |X| and |Y| so that every distance and tour length
// stays finite.
const MaxCoordinate = 1e150

// ValidatePoints rejects any point with a NaN, infinite or out-of-range coordinate.
func ValidatePoints(field string, points []Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return &InvalidInputError{
				Field:  field,
				Index:  i,
				Reason: fmt.Sprintf("coordinate (%v, %v) is not finite", p.X, p.Y),
			}
		}
		if !p.InRange() {
			return &InvalidInputError{
				Field:  field,
				Index:  i,
				Reason: fmt.Sprintf("coordinate (%v, %v) exceeds magnitude %g", p.X, p.Y, MaxCoordinate),
			}
		}
	}
	return nil
}

// ValidateDepots requires at least one depot, all with finite coordinates.
func ValidateDepots(depots []Point) error {
	if len(depots) == 0 {
		return &InvalidInputError{Field: "depots", Index: -1, Reason: "at least one depot is required"}
	}
	return ValidatePoints("depots", depots)
}
