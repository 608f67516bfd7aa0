// SPDX-License-Identifier: MPL-2.0

// Package quantity defines the registry-visible descriptors ("proxies") for
// ratio units and affine scales, and the values they create.
//
// A *Unit[T] describes a ratio unit: its family, dimension vector, factor
// (instances of the unit per instance of the family's canonical unit) and
// display symbols. Unit.Create tags a raw number with the unit; Unit.From
// converts any quantity of the same family by the factor ratio.
//
// A *Scale[T] describes an affine level such as Celsius. It is expressed in an
// underlying unit and carries an offset: the reading the scale shows at the
// family's absolute reference point. Conversions between scales normalize to
// that reference, rescale, and re-apply the target offset.
//
// T is the numeric storage kind: float64 for physical families and
// *apd.Decimal for monetary ones (see package numeric).
//
//	meter, _ := quantity.NewUnit(numeric.Float{}, quantity.UnitSpec[float64]{
//		Name: "meter", Family: length, Sense: dimension.LengthSense,
//		Factor: 1, Symbols: symbol.Must("m"),
//	})
//	km, _ := quantity.NewUnit(numeric.Float{}, quantity.UnitSpec[float64]{
//		Name: "kilometer", Family: length, Sense: dimension.LengthSense,
//		Factor: 0.001, Symbols: symbol.Must("km"),
//	})
//	q, _ := km.From(meter.Create(1500)) // 1.5 km
//
// Nothing in this package is global. Dynamic resolution of a scale from a unit
// goes through a ScaleResolver, normally a sealed *catalog.Catalog.
package quantity
