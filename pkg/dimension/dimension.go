// SPDX-License-Identifier: MPL-2.0

package dimension

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Base dimensions, in vector order.
const (
	Length Base = iota
	Time
	Mass
	Temperature
	ElectricCurrent
	AmountOfSubstance
	LuminousIntensity
	Other

	// Count is the number of base dimensions tracked by a Sense.
	Count = int(Other) + 1
)

// ErrInvalidSense is the sentinel error wrapped by InvalidSenseError.
var ErrInvalidSense = errors.New("invalid dimension vector")

type (
	// Base identifies one base dimension (one slot of a Sense).
	Base int

	// Sense is the vector of base-dimension exponents for a unit.
	// The zero value is dimensionless (plain scalars, angles, solid angles).
	Sense [Count]int8

	// InvalidSenseError is returned when an operation would overflow an
	// exponent slot.
	InvalidSenseError struct {
		Base     Base
		Exponent int
	}
)

var (
	baseSymbols = [Count]string{"L", "T", "M", "Θ", "I", "N", "J", "X"}
	baseNames   = [Count]string{
		"length", "time", "mass", "temperature",
		"electric current", "amount of substance", "luminous intensity", "other",
	}
	superscripts = map[rune]rune{
		'-': '⁻', '0': '⁰', '1': '¹', '2': '²', '3': '³',
		'4': '⁴', '5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	}
)

// String returns the human-readable name of the base dimension.
func (b Base) String() string {
	if b < 0 || int(b) >= Count {
		return fmt.Sprintf("base(%d)", int(b))
	}
	return baseNames[b]
}

// Symbol returns the conventional one-letter symbol of the base dimension.
func (b Base) Symbol() string {
	if b < 0 || int(b) >= Count {
		return "?"
	}
	return baseSymbols[b]
}

// Of returns the Sense with a single exponent of one in slot b.
func Of(b Base) Sense {
	var s Sense
	s[b] = 1
	return s
}

// Multiply returns the elementwise exponent sum of a and b. An exponent that
// leaves the int8 range yields an *InvalidSenseError.
func Multiply(a, b Sense) (Sense, error) { return combine(a, b, 1) }

// Divide returns the elementwise exponent difference of a and b. An exponent
// that leaves the int8 range yields an *InvalidSenseError.
func Divide(a, b Sense) (Sense, error) { return combine(a, b, -1) }

// Equal reports whether a and b have the same exponents.
func Equal(a, b Sense) bool { return a == b }

// Inverse returns the Sense with every exponent negated. Negating -128
// yields an *InvalidSenseError.
func Inverse(a Sense) (Sense, error) { return Divide(Sense{}, a) }

func combine(a, b Sense, sign int) (Sense, error) {
	var out Sense
	for i := range out {
		e := int(a[i]) + sign*int(b[i])
		if e > math.MaxInt8 || e < math.MinInt8 {
			return Sense{}, &InvalidSenseError{Base: Base(i), Exponent: e}
		}
		out[i] = int8(e)
	}
	return out, nil
}

// Pow raises every exponent of a by n. An exponent that leaves the int8
// range yields an *InvalidSenseError.
func Pow(a Sense, n int) (Sense, error) {
	var out Sense
	for i := range a {
		e := int(a[i]) * n
		if e > math.MaxInt8 || e < math.MinInt8 {
			return Sense{}, &InvalidSenseError{Base: Base(i), Exponent: e}
		}
		out[i] = int8(e)
	}
	return out, nil
}

// Exponent returns the exponent of base dimension b.
func (s Sense) Exponent(b Base) int { return int(s[b]) }

// IsDimensionless reports whether every exponent is zero.
func (s Sense) IsDimensionless() bool { return s == Sense{} }

// String renders the vector in conventional notation, e.g. "L·T⁻¹".
// A dimensionless vector renders as "1".
func (s Sense) String() string {
	parts := make([]string, 0, Count)
	for i, e := range s {
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, baseSymbols[i]+superscript(int(e)))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

func superscript(n int) string {
	var sb strings.Builder
	for _, r := range fmt.Sprint(n) {
		sb.WriteRune(superscripts[r])
	}
	return sb.String()
}

// Error implements the error interface.
func (e *InvalidSenseError) Error() string {
	return fmt.Sprintf("invalid dimension vector: %s exponent %d out of range [%d, %d]",
		e.Base, e.Exponent, math.MinInt8, math.MaxInt8)
}

// Unwrap returns ErrInvalidSense for errors.Is() compatibility.
func (e *InvalidSenseError) Unwrap() error { return ErrInvalidSense }
