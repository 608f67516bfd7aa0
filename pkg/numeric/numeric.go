// SPDX-License-Identifier: MPL-2.0

// Package numeric defines the two numeric storage kinds a quantity can use:
// binary floating point (float64) for physical families and fixed decimal
// (cockroachdb/apd) for monetary families, behind one Arithmetic interface so
// conversion code is written once.
package numeric

import (
	"errors"
	"fmt"
)

const (
	// KindFloat stores raw values as float64.
	KindFloat Kind = "float"
	// KindDecimal stores raw values as *apd.Decimal.
	KindDecimal Kind = "decimal"
)

var (
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid numeric kind")
	// ErrDivisionByZero is returned by Quo when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotFinite is returned when a float64 operation yields NaN or an infinity.
	ErrNotFinite = errors.New("result is not finite")
	// ErrInvalidNumber is the sentinel error wrapped by InvalidNumberError.
	ErrInvalidNumber = errors.New("invalid number")
)

type (
	// Kind names a numeric storage kind.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	InvalidKindError struct {
		Value Kind
	}

	// InvalidNumberError is returned when a textual number cannot be parsed
	// into the requested kind.
	InvalidNumberError struct {
		Kind  Kind
		Input string
		Cause error
	}

	// Arithmetic is the set of operations conversions need from a numeric kind.
	// Implementations are stateless values and safe for concurrent use.
	Arithmetic[T any] interface {
		Kind() Kind
		Zero() T
		One() T
		Add(x, y T) (T, error)
		Sub(x, y T) (T, error)
		Mul(x, y T) (T, error)
		Quo(x, y T) (T, error)
		// Rescale returns x * (num / den), rounding the way the kind prefers:
		// floats form the ratio first, decimals multiply before dividing.
		Rescale(x, num, den T) (T, error)
		Cmp(x, y T) int
		Sign(x T) int
		// Equivalent reports equality within the kind's precision: a relative
		// tolerance for floats, exact comparison for decimals.
		Equivalent(x, y T) bool
		Parse(s string) (T, error)
		Format(x T, layout string) string
	}
)

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Validate returns an error if the Kind is not one of the defined kinds.
func (k Kind) Validate() error {
	switch k {
	case KindFloat, KindDecimal:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid numeric kind %q (valid: %s, %s)", e.Value, KindFloat, KindDecimal)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s number %q: %v", e.Kind, e.Input, e.Cause)
	}
	return fmt.Sprintf("invalid %s number %q", e.Kind, e.Input)
}

// Unwrap returns ErrInvalidNumber for errors.Is() compatibility.
func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }
