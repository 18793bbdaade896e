package pv

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNumericDomain indicates a formula result that is NaN or infinite.
	ErrNumericDomain = errors.New("pv: numeric domain error (NaN or Inf result)")

	// ErrUnknownFormula indicates a registry lookup for an unregistered name.
	ErrUnknownFormula = errors.New("pv: unknown formula")

	// ErrArity indicates a wrong number of positional arguments.
	ErrArity = errors.New("pv: wrong number of arguments")

	// ErrMissingParam indicates a named evaluation without a required parameter.
	ErrMissingParam = errors.New("pv: missing parameter")

	// ErrUnknownParam indicates a named evaluation with a key the formula
	// does not take.
	ErrUnknownParam = errors.New("pv: unknown parameter")
)

// ArityError reports a positional call with the wrong argument count.
type ArityError struct {
	Formula string
	Min     int
	Max     int
	Got     int
}

func (e *ArityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("%s: %s takes %d arguments, got %d", ErrArity, e.Formula, e.Max, e.Got)
	}
	return fmt.Sprintf("%s: %s takes %d to %d arguments, got %d", ErrArity, e.Formula, e.Min, e.Max, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}

// Values is a sequence of results, as returned by SpectralRadiance.
type Values []float64

// IsValid reports whether every value is finite.
func (v Values) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Check returns v unchanged, with ErrNumericDomain if v is NaN or infinite.
func Check(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, ErrNumericDomain
	}
	return v, nil
}
