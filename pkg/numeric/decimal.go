// SPDX-License-Identifier: MPL-2.0

package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalPrecision is the number of significant digits kept by the
// zero-value Decimal (decimal128).
const DefaultDecimalPrecision = 34

// guardDigits are the trailing significant digits Equivalent ignores.
const guardDigits = 2

var defaultDecimalContext = newContext(DefaultDecimalPrecision)

// Decimal is the fixed-decimal Arithmetic over *apd.Decimal. Every operation
// allocates a fresh result; operands are never modified. A nil operand reads
// as zero.
type Decimal struct {
	ctx *apd.Context
}

// NewDecimal returns a Decimal arithmetic that keeps precision significant digits.
func NewDecimal(precision uint32) Decimal {
	return Decimal{ctx: newContext(precision)}
}

// newContext rounds half up so that displayed amounts follow commercial rounding.
func newContext(precision uint32) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}

// Dec parses a decimal literal and panics on failure. Intended for static tables.
func Dec(s string) *apd.Decimal {
	d, err := Decimal{}.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

var _ Arithmetic[*apd.Decimal] = Decimal{}

func (d Decimal) context() *apd.Context {
	if d.ctx == nil {
		return defaultDecimalContext
	}
	return d.ctx
}

// Kind returns KindDecimal.
func (Decimal) Kind() Kind { return KindDecimal }

// Zero returns a new decimal 0.
func (Decimal) Zero() *apd.Decimal { return apd.New(0, 0) }

// One returns a new decimal 1.
func (Decimal) One() *apd.Decimal { return apd.New(1, 0) }

// Add returns x + y.
func (d Decimal) Add(x, y *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := d.context().Add(out, orZero(x), orZero(y)); err != nil {
		return nil, fmt.Errorf("decimal add: %w", err)
	}
	return out, nil
}

// Sub returns x - y.
func (d Decimal) Sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := d.context().Sub(out, orZero(x), orZero(y)); err != nil {
		return nil, fmt.Errorf("decimal sub: %w", err)
	}
	return out, nil
}

// Mul returns x * y.
func (d Decimal) Mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := d.context().Mul(out, orZero(x), orZero(y)); err != nil {
		return nil, fmt.Errorf("decimal mul: %w", err)
	}
	return out, nil
}

// Quo returns x / y rounded to the context precision, or ErrDivisionByZero.
func (d Decimal) Quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if orZero(y).IsZero() {
		return nil, ErrDivisionByZero
	}
	out := new(apd.Decimal)
	if _, err := d.context().Quo(out, orZero(x), y); err != nil {
		return nil, fmt.Errorf("decimal quo: %w", err)
	}
	return out, nil
}

// Rescale returns x * num / den, keeping the product exact before the
// single rounding division.
func (d Decimal) Rescale(x, num, den *apd.Decimal) (*apd.Decimal, error) {
	product, err := d.Mul(x, num)
	if err != nil {
		return nil, err
	}
	return d.Quo(product, den)
}

// Cmp compares x and y, returning -1, 0 or +1.
func (Decimal) Cmp(x, y *apd.Decimal) int { return orZero(x).Cmp(orZero(y)) }

// Sign returns -1, 0 or +1 according to the sign of x.
func (Decimal) Sign(x *apd.Decimal) int { return orZero(x).Sign() }

// Equivalent reports numeric equality (1.50 equals 1.5) after rounding both
// operands to the context precision less guardDigits, so the last-digit error
// of a division cancels out: EUR to GBP to EUR yields 0.99...96, which is 1.
func (d Decimal) Equivalent(x, y *apd.Decimal) bool {
	ctx := d.context()
	if ctx.Precision > guardDigits {
		ctx = ctx.WithPrecision(ctx.Precision - guardDigits)
	}
	rx, ry := new(apd.Decimal), new(apd.Decimal)
	if _, err := ctx.Round(rx, orZero(x)); err != nil {
		return false
	}
	if _, err := ctx.Round(ry, orZero(y)); err != nil {
		return false
	}
	return rx.Cmp(ry) == 0
}

// Parse reads a finite decimal literal such as "1.0842" or "-3e2".
func (Decimal) Parse(s string) (*apd.Decimal, error) {
	v, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, &InvalidNumberError{Kind: KindDecimal, Input: s, Cause: err}
	}
	if v.Form != apd.Finite {
		return nil, &InvalidNumberError{Kind: KindDecimal, Input: s, Cause: ErrNotFinite}
	}
	return v, nil
}

// Format renders x. A "%.Nf" layout rounds to N fraction digits; other
// layouts are handed to fmt, and "" prints the plain decimal text.
func (d Decimal) Format(x *apd.Decimal, layout string) string {
	x = orZero(x)
	if layout == "" {
		return x.Text('f')
	}
	var places int32
	if n, err := fmt.Sscanf(layout, "%%.%df", &places); err == nil && n == 1 && fmt.Sprintf("%%.%df", places) == layout {
		rounded := new(apd.Decimal)
		if _, err := d.context().Quantize(rounded, x, -places); err == nil {
			return rounded.Text('f')
		}
	}
	return fmt.Sprintf(layout, x)
}

func orZero(x *apd.Decimal) *apd.Decimal {
	if x == nil {
		return apd.New(0, 0)
	}
	return x
}
