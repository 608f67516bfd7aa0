// SPDX-License-Identifier: MPL-2.0

package quantity

// Quantity is a raw number tagged with the ratio unit it is expressed in.
// The zero value has no unit and converts to nothing.
type Quantity[T any] struct {
	value T
	unit  *Unit[T]
}

// Value returns the raw number.
func (q Quantity[T]) Value() T { return q.value }

// Unit returns the unit the value is expressed in, or nil for the zero Quantity.
func (q Quantity[T]) Unit() *Unit[T] { return q.unit }

// Family returns the unit's family, or 0 for the zero Quantity.
func (q Quantity[T]) Family() FamilyID {
	if q.unit == nil {
		return 0
	}
	return q.unit.family
}

// IsZero reports whether the quantity has no unit.
func (q Quantity[T]) IsZero() bool { return q.unit == nil }

// In converts q into unit u.
func (q Quantity[T]) In(u *Unit[T]) (Quantity[T], error) { return u.From(q) }

// Equivalent reports whether o, converted into q's unit, equals q within the
// numeric kind's precision. Quantities of different families are never equivalent.
func (q Quantity[T]) Equivalent(o Quantity[T]) bool {
	if q.unit == nil || o.unit == nil {
		return q.unit == o.unit
	}
	converted, err := q.unit.From(o)
	if err != nil {
		return false
	}
	return q.unit.arith.Equivalent(q.value, converted.value)
}

// String renders the value with the unit's format and default symbol, e.g. "1.5 km".
func (q Quantity[T]) String() string {
	if q.unit == nil {
		return "<invalid quantity>"
	}
	return q.unit.arith.Format(q.value, q.unit.format) + " " + string(q.unit.symbols.Default())
}
