package colorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned by the strict parsers when the text is not written
	// in the parser's notation at all.
	ErrNoMatch = errors.New("text does not match color notation")

	// ErrOutOfRange is wrapped by every RangeError.
	ErrOutOfRange = errors.New("color component out of range")

	// ErrNotHexadecimal is wrapped by every DigitError.
	ErrNotHexadecimal = errors.New("color component is not hexadecimal")
)

// RangeError reports a numeric component outside its declared range.
type RangeError struct {
	Field string  // Component name: "red", "hue", "alpha", ...
	Value float64 // The rejected value
	Min   float64 // Inclusive lower bound
	Max   float64 // Inclusive upper bound
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("the %s value %v must be in range [%v-%v]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// DigitError reports a hex component that is not a 1 or 2 digit hexadecimal
// string, or whose digit count differs from its sibling components.
type DigitError struct {
	Field string
	Value string
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("the %s value %q is not hexadecimal", e.Field, e.Value)
}

func (e *DigitError) Unwrap() error { return ErrNotHexadecimal }

func noMatch(notation, text string) error {
	return fmt.Errorf("%s: %q: %w", notation, text, ErrNoMatch)
}

func checkInt(field string, v, min, max int) error {
	if v < min || v > max {
		return &RangeError{Field: field, Value: float64(v), Min: float64(min), Max: float64(max)}
	}
	return nil
}

// checkUnit rejects NaN as well, since NaN fails both comparisons.
func checkUnit(field string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return &RangeError{Field: field, Value: v, Min: 0, Max: 1}
	}
	return nil
}
