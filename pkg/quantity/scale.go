// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	// ScaleSpec holds the static description of an affine scale.
	ScaleSpec[T any] struct {
		Name UnitName
		// Unit is the ratio unit the scale reads in. The scale joins its family.
		Unit *Unit[T]
		// Offset is the reading of this scale at the family's absolute
		// reference, in Unit (Kelvin 0, Celsius -273.15, Fahrenheit -459.67).
		Offset  T
		Symbols symbol.Collection
		Format  string
	}

	// Scale is the proxy for one affine scale. It is immutable once built.
	Scale[T any] struct {
		name    UnitName
		unit    *Unit[T]
		offset  T
		symbols symbol.Collection
		format  string
	}

	// Level is a raw reading tagged with the scale it was taken on.
	// The zero value has no scale and converts to nothing.
	Level[T any] struct {
		value T
		scale *Scale[T]
	}
)

var _ ScaleProxy = (*Scale[float64])(nil)

// NewScale validates spec and returns the scale proxy.
func NewScale[T any](spec ScaleSpec[T]) (*Scale[T], error) {
	var errs []error
	if err := spec.Name.Validate(); err != nil {
		errs = append(errs, err)
	}
	if spec.Unit == nil {
		errs = append(errs, ErrMissingBaseUnit)
	}
	if spec.Symbols.IsZero() {
		errs = append(errs, symbol.ErrEmptyCollection)
	}
	if len(errs) > 0 {
		return nil, &InvalidProxyError{Name: spec.Name, FieldErrors: errs}
	}

	return &Scale[T]{
		name:    spec.Name,
		unit:    spec.Unit,
		offset:  spec.Offset,
		symbols: spec.Symbols,
		format:  spec.Format,
	}, nil
}

// Name returns the scale's stable identifier.
func (s *Scale[T]) Name() UnitName { return s.name }

// Family returns the family shared with the underlying unit.
func (s *Scale[T]) Family() FamilyID { return s.unit.family }

// Sense returns the underlying unit's dimension vector.
func (s *Scale[T]) Sense() dimension.Sense { return s.unit.sense }

// Symbols returns the scale's display symbols.
func (s *Scale[T]) Symbols() symbol.Collection { return s.symbols }

// Format returns the printf layout for readings, falling back to the unit's.
func (s *Scale[T]) Format() string {
	if s.format == "" {
		return s.unit.format
	}
	return s.format
}

// Kind returns the numeric storage kind.
func (s *Scale[T]) Kind() numeric.Kind { return s.unit.Kind() }

// Unit returns the ratio unit the scale is expressed in.
func (s *Scale[T]) Unit() *Unit[T] { return s.unit }

// BaseUnit returns Unit as a UnitProxy.
func (s *Scale[T]) BaseUnit() UnitProxy { return s.unit }

// Offset returns the scale's zero point relative to the absolute reference,
// as a quantity of Unit.
func (s *Scale[T]) Offset() Quantity[T] { return s.unit.Create(s.offset) }

// OffsetText renders the offset.
func (s *Scale[T]) OffsetText() string { return s.unit.arith.Format(s.offset, "") }

// Create tags raw as a reading on this scale.
func (s *Scale[T]) Create(raw T) Level[T] {
	return Level[T]{value: raw, scale: s}
}

// From converts a reading on any scale of the same family: the reading is
// normalized to the absolute reference (raw - offset), rescaled from the
// source unit into s.Unit(), and shifted by s's offset.
func (s *Scale[T]) From(other Level[T]) (Level[T], error) {
	if other.scale == nil {
		return Level[T]{}, &IncompatibleFamilyError{To: s.name, ToFamily: s.Family()}
	}
	if other.scale.Family() != s.Family() {
		return Level[T]{}, &IncompatibleFamilyError{
			From:       other.scale.name,
			To:         s.name,
			FromFamily: other.scale.Family(),
			ToFamily:   s.Family(),
		}
	}
	if other.scale == s {
		return other, nil
	}

	arith := s.unit.arith
	normalized, err := arith.Sub(other.value, other.scale.offset)
	if err != nil {
		return Level[T]{}, err
	}
	rescaled, err := arith.Rescale(normalized, s.unit.factor, other.scale.unit.factor)
	if err != nil {
		return Level[T]{}, err
	}
	shifted, err := arith.Add(rescaled, s.offset)
	if err != nil {
		return Level[T]{}, err
	}
	return s.Create(shifted), nil
}

// FromQuantity converts a quantity that carries only a unit. The resolver
// supplies the scale of s's family bound to q's unit; q is read as a level on
// that scale and converted as in From. It fails with *IncompatibleFamilyError
// for a foreign family and *LookupMissError when no scale is bound to q's unit.
func (s *Scale[T]) FromQuantity(q Quantity[T], r ScaleResolver) (Level[T], error) {
	if q.unit == nil || q.unit.family != s.Family() {
		var from UnitName
		if q.unit != nil {
			from = q.unit.name
		}
		return Level[T]{}, &IncompatibleFamilyError{
			From:       from,
			To:         s.name,
			FromFamily: q.Family(),
			ToFamily:   s.Family(),
		}
	}
	proxy, err := r.Scale(s.Family(), q.unit)
	if err != nil {
		return Level[T]{}, err
	}
	resolved, ok := proxy.(*Scale[T])
	if !ok {
		return Level[T]{}, &KindMismatchError{Proxy: proxy.Name(), Want: s.Kind(), Got: proxy.Kind()}
	}
	return s.From(resolved.Create(q.value))
}

// String returns the scale name and default symbol, e.g. "Celsius [°C]".
func (s *Scale[T]) String() string {
	return string(s.name) + " [" + string(s.symbols.Default()) + "]"
}

// Value returns the raw reading.
func (l Level[T]) Value() T { return l.value }

// Scale returns the scale of the reading, or nil for the zero Level.
func (l Level[T]) Scale() *Scale[T] { return l.scale }

// Family returns the scale's family, or 0 for the zero Level.
func (l Level[T]) Family() FamilyID {
	if l.scale == nil {
		return 0
	}
	return l.scale.Family()
}

// IsZero reports whether the level has no scale.
func (l Level[T]) IsZero() bool { return l.scale == nil }

// In converts l onto scale s.
func (l Level[T]) In(s *Scale[T]) (Level[T], error) { return s.From(l) }

// Equivalent reports whether o, converted onto l's scale, equals l within the
// numeric kind's precision.
func (l Level[T]) Equivalent(o Level[T]) bool {
	if l.scale == nil || o.scale == nil {
		return l.scale == o.scale
	}
	converted, err := l.scale.From(o)
	if err != nil {
		return false
	}
	return l.scale.unit.arith.Equivalent(l.value, converted.value)
}

// String renders the reading with the scale's format and default symbol, e.g. "21.5 °C".
func (l Level[T]) String() string {
	if l.scale == nil {
		return "<invalid level>"
	}
	return l.scale.unit.arith.Format(l.value, l.scale.Format()) + " " + string(l.scale.symbols.Default())
}
