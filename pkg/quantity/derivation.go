// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"fmt"
	"strconv"

	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
)

type (
	// Derivation asserts that a unit is algebraically derived from others.
	// Catalog builders run Check when sealing.
	Derivation interface {
		Target() UnitProxy
		Check() error
	}

	derivation[T any] struct {
		target *Unit[T]
		// expr renders the operands, e.g. "meter·meter" or "meter^3".
		expr   string
		sense  func() (dimension.Sense, error)
		factor func() (T, error)
	}
)

// Product asserts target = a·b: its sense is the sum of the operands' exponents
// and its factor the product of their factors (square meter from meter·meter).
func Product[T any](target, a, b *Unit[T]) Derivation {
	return &derivation[T]{
		target: target,
		expr:   string(a.name) + "·" + string(b.name),
		sense:  func() (dimension.Sense, error) { return dimension.Multiply(a.sense, b.sense) },
		factor: func() (T, error) { return target.arith.Mul(a.factor, b.factor) },
	}
}

// Quotient asserts target = a/b: its sense is the difference of the operands'
// exponents and its factor the quotient of their factors (km/h from km and h).
func Quotient[T any](target, a, b *Unit[T]) Derivation {
	return &derivation[T]{
		target: target,
		expr:   string(a.name) + "/" + string(b.name),
		sense:  func() (dimension.Sense, error) { return dimension.Divide(a.sense, b.sense) },
		factor: func() (T, error) { return target.arith.Quo(a.factor, b.factor) },
	}
}

// Power asserts target = a^n: its sense is a's exponents times n and its factor
// a's factor raised to n (cubic meter from meter^3). A negative n inverts.
func Power[T any](target, a *Unit[T], n int) Derivation {
	return &derivation[T]{
		target: target,
		expr:   string(a.name) + "^" + strconv.Itoa(n),
		sense:  func() (dimension.Sense, error) { return dimension.Pow(a.sense, n) },
		factor: func() (T, error) { return pow(target.arith, a.factor, n) },
	}
}

func pow[T any](arith numeric.Arithmetic[T], x T, n int) (T, error) {
	out := arith.One()
	k := n
	if k < 0 {
		k = -k
	}
	for range k {
		var err error
		if out, err = arith.Mul(out, x); err != nil {
			return out, err
		}
	}
	if n < 0 {
		return arith.Quo(arith.One(), out)
	}
	return out, nil
}

func (d *derivation[T]) Target() UnitProxy { return d.target }

func (d *derivation[T]) Check() error {
	wantSense, err := d.sense()
	if err != nil {
		return &InconsistentDerivationError{Unit: d.target.name, Reason: err.Error()}
	}
	if !dimension.Equal(d.target.sense, wantSense) {
		return &InconsistentDerivationError{
			Unit:   d.target.name,
			Reason: fmt.Sprintf("sense %s, but %s has sense %s", d.target.sense, d.expr, wantSense),
		}
	}
	wantFactor, err := d.factor()
	if err != nil {
		return &InconsistentDerivationError{Unit: d.target.name, Reason: err.Error()}
	}
	arith := d.target.arith
	if !arith.Equivalent(d.target.factor, wantFactor) {
		return &InconsistentDerivationError{
			Unit: d.target.name,
			Reason: fmt.Sprintf("factor %s, but %s has factor %s",
				arith.Format(d.target.factor, ""), d.expr, arith.Format(wantFactor, "")),
		}
	}
	return nil
}
