// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	// UnitSpec holds the static description of a ratio unit.
	UnitSpec[T any] struct {
		Name   UnitName
		Family FamilyID
		Sense  dimension.Sense
		// Factor is the number of instances of this unit per instance of the
		// family's canonical unit (meter = 1, kilometer = 0.001).
		Factor  T
		Symbols symbol.Collection
		// Format is the printf layout used to render raw values; empty means
		// the numeric kind's default.
		Format string
		// Calibratable allows SetFactor after construction (exchange rates).
		Calibratable bool
	}

	// Unit is the proxy for one ratio unit.
	//
	// Factor and Format are the only mutable fields. Mutation is not
	// synchronized: callers that calibrate while conversions run concurrently
	// must serialize access themselves.
	Unit[T any] struct {
		arith        numeric.Arithmetic[T]
		name         UnitName
		family       FamilyID
		sense        dimension.Sense
		factor       T
		symbols      symbol.Collection
		format       string
		calibratable bool
	}
)

var _ UnitProxy = (*Unit[float64])(nil)

// NewUnit validates spec and returns the unit proxy.
func NewUnit[T any](arith numeric.Arithmetic[T], spec UnitSpec[T]) (*Unit[T], error) {
	var errs []error
	if err := spec.Name.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := spec.Family.Validate(); err != nil {
		errs = append(errs, err)
	}
	if spec.Symbols.IsZero() {
		errs = append(errs, symbol.ErrEmptyCollection)
	}
	if arith.Sign(spec.Factor) <= 0 {
		errs = append(errs, &InvalidFactorError{Unit: spec.Name, Factor: arith.Format(spec.Factor, "")})
	}
	if len(errs) > 0 {
		return nil, &InvalidProxyError{Name: spec.Name, FieldErrors: errs}
	}

	return &Unit[T]{
		arith:        arith,
		name:         spec.Name,
		family:       spec.Family,
		sense:        spec.Sense,
		factor:       spec.Factor,
		symbols:      spec.Symbols,
		format:       spec.Format,
		calibratable: spec.Calibratable,
	}, nil
}

// Name returns the unit's stable identifier.
func (u *Unit[T]) Name() UnitName { return u.name }

// Family returns the unit's family id.
func (u *Unit[T]) Family() FamilyID { return u.family }

// Sense returns the unit's dimension vector.
func (u *Unit[T]) Sense() dimension.Sense { return u.sense }

// Symbols returns the unit's display symbols.
func (u *Unit[T]) Symbols() symbol.Collection { return u.symbols }

// Format returns the printf layout for raw values.
func (u *Unit[T]) Format() string { return u.format }

// Kind returns the numeric storage kind.
func (u *Unit[T]) Kind() numeric.Kind { return u.arith.Kind() }

// Arithmetic returns the numeric operations the unit computes with.
func (u *Unit[T]) Arithmetic() numeric.Arithmetic[T] { return u.arith }

// Factor returns the current factor.
func (u *Unit[T]) Factor() T { return u.factor }

// FactorText renders the current factor.
func (u *Unit[T]) FactorText() string { return u.arith.Format(u.factor, "") }

// HasUnitFactor reports whether the factor equals one.
func (u *Unit[T]) HasUnitFactor() bool { return u.arith.Cmp(u.factor, u.arith.One()) == 0 }

// Calibratable reports whether SetFactor is permitted.
func (u *Unit[T]) Calibratable() bool { return u.calibratable }

// SetFactor replaces the factor of a calibratable unit.
func (u *Unit[T]) SetFactor(factor T) error {
	if !u.calibratable {
		return &NotCalibratableError{Unit: u.name}
	}
	if u.arith.Sign(factor) <= 0 {
		return &InvalidFactorError{Unit: u.name, Factor: u.arith.Format(factor, "")}
	}
	u.factor = factor
	return nil
}

// SetFormat replaces the display layout.
func (u *Unit[T]) SetFormat(layout string) { u.format = layout }

// Create tags raw with this unit.
func (u *Unit[T]) Create(raw T) Quantity[T] {
	return Quantity[T]{value: raw, unit: u}
}

// From converts other into this unit: other.Value() * (u.Factor() / other.Unit().Factor()).
// It fails with *IncompatibleFamilyError when the families differ.
func (u *Unit[T]) From(other Quantity[T]) (Quantity[T], error) {
	if other.unit == nil {
		return Quantity[T]{}, &IncompatibleFamilyError{To: u.name, ToFamily: u.family}
	}
	if other.unit.family != u.family {
		return Quantity[T]{}, &IncompatibleFamilyError{
			From:       other.unit.name,
			To:         u.name,
			FromFamily: other.unit.family,
			ToFamily:   u.family,
		}
	}
	if other.unit == u {
		return other, nil
	}
	v, err := u.arith.Rescale(other.value, u.factor, other.unit.factor)
	if err != nil {
		return Quantity[T]{}, err
	}
	return u.Create(v), nil
}

// String returns the unit name and default symbol, e.g. "kilometer [km]".
func (u *Unit[T]) String() string {
	return string(u.name) + " [" + string(u.symbols.Default()) + "]"
}
