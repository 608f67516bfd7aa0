// SPDX-License-Identifier: MPL-2.0

package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultFloatTolerance is the relative tolerance used by Float.Equivalent.
const DefaultFloatTolerance = 1e-12

// Float is the float64 Arithmetic. The zero value uses DefaultFloatTolerance.
type Float struct {
	// Tolerance overrides DefaultFloatTolerance when positive.
	Tolerance float64
}

var _ Arithmetic[float64] = Float{}

// Kind returns KindFloat.
func (Float) Kind() Kind { return KindFloat }

// Zero returns 0.
func (Float) Zero() float64 { return 0 }

// One returns 1.
func (Float) One() float64 { return 1 }

// Add returns x + y.
func (Float) Add(x, y float64) (float64, error) { return finite(x + y) }

// Sub returns x - y.
func (Float) Sub(x, y float64) (float64, error) { return finite(x - y) }

// Mul returns x * y.
func (Float) Mul(x, y float64) (float64, error) { return finite(x * y) }

// Quo returns x / y, or ErrDivisionByZero when y is zero.
func (Float) Quo(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return finite(x / y)
}

// Rescale returns x * (num / den).
func (f Float) Rescale(x, num, den float64) (float64, error) {
	ratio, err := f.Quo(num, den)
	if err != nil {
		return 0, err
	}
	return f.Mul(x, ratio)
}

// Cmp compares x and y, returning -1, 0 or +1.
func (Float) Cmp(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or +1 according to the sign of x.
func (f Float) Sign(x float64) int { return f.Cmp(x, 0) }

// Equivalent reports whether x and y differ by at most the relative tolerance,
// scaled by max(1, |x|, |y|) so values near zero compare absolutely.
func (f Float) Equivalent(x, y float64) bool {
	tol := f.Tolerance
	if tol <= 0 {
		tol = DefaultFloatTolerance
	}
	scale := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	return math.Abs(x-y) <= tol*scale
}

// Parse reads a decimal or scientific float literal.
func (Float) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &InvalidNumberError{Kind: KindFloat, Input: s, Cause: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidNumberError{Kind: KindFloat, Input: s, Cause: ErrNotFinite}
	}
	return v, nil
}

// Format renders x with a printf layout such as "%g" or "%.3f".
func (Float) Format(x float64, layout string) string {
	if layout == "" {
		layout = "%g"
	}
	return fmt.Sprintf(layout, x)
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
