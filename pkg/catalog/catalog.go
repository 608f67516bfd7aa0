// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"reflect"
	"slices"

	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	// Catalog is a sealed, read-only registry. All methods are safe for
	// concurrent use. Calibrating a unit's factor is not synchronized with
	// queries; see quantity.Unit.
	Catalog struct {
		buckets []*bucket
		byName  map[quantity.FamilyName]quantity.FamilyID
		symbols map[symbol.Symbol][]quantity.Proxy
	}

	// Family describes one registered family.
	Family struct {
		ID   quantity.FamilyID
		Name quantity.FamilyName
	}
)

var _ quantity.ScaleResolver = (*Catalog)(nil)

// String returns the family name.
func (f Family) String() string { return string(f.Name) }

// Unit returns the canonical unit of family: the first unit registered in it.
// It fails with *quantity.LookupMissError when the family has no unit.
func (c *Catalog) Unit(family quantity.FamilyID) (quantity.UnitProxy, error) {
	bk := c.bucket(family)
	if bk == nil || len(bk.units) == 0 {
		return nil, &quantity.LookupMissError{Family: family}
	}
	return bk.units[0], nil
}

// Scale returns the scale of family whose underlying unit is unit.
// It fails with *quantity.LookupMissError when none is registered.
func (c *Catalog) Scale(family quantity.FamilyID, unit quantity.UnitProxy) (quantity.ScaleProxy, error) {
	if isNilProxy(unit) {
		return nil, &quantity.LookupMissError{Family: family}
	}
	bk := c.bucket(family)
	if bk == nil {
		return nil, &quantity.LookupMissError{Family: family, Unit: unit.Name()}
	}
	if s := bk.scaleFor(unit); s != nil {
		return s, nil
	}
	return nil, &quantity.LookupMissError{Family: family, Unit: unit.Name()}
}

// Units returns the family's units in registration order; the first is canonical.
func (c *Catalog) Units(family quantity.FamilyID) []quantity.UnitProxy {
	if bk := c.bucket(family); bk != nil {
		return slices.Clone(bk.units)
	}
	return nil
}

// Scales returns the family's scales in registration order.
func (c *Catalog) Scales(family quantity.FamilyID) []quantity.ScaleProxy {
	if bk := c.bucket(family); bk != nil {
		return slices.Clone(bk.scales)
	}
	return nil
}

// Families returns every family in id order.
func (c *Catalog) Families() []Family {
	out := make([]Family, len(c.buckets))
	for i, bk := range c.buckets {
		out[i] = Family{ID: bk.id, Name: bk.name}
	}
	return out
}

// Family returns the family with the given id.
func (c *Catalog) Family(id quantity.FamilyID) (Family, error) {
	bk := c.bucket(id)
	if bk == nil {
		return Family{}, &UnknownFamilyError{ID: id}
	}
	return Family{ID: bk.id, Name: bk.name}, nil
}

// FamilyByName returns the family registered under name.
func (c *Catalog) FamilyByName(name quantity.FamilyName) (Family, error) {
	id, ok := c.byName[name]
	if !ok {
		return Family{}, &UnknownFamilyError{Name: name}
	}
	return Family{ID: id, Name: name}, nil
}

// LookupSymbol returns every proxy that lists s among its symbols, family by
// family, each family's units before its scales. A spelling may be shared:
// "K" names both the kelvin unit and the Kelvin scale.
func (c *Catalog) LookupSymbol(s symbol.Symbol) []quantity.Proxy {
	return slices.Clone(c.symbols[s])
}

func (c *Catalog) bucket(id quantity.FamilyID) *bucket {
	if c == nil || id == 0 || int(id) > len(c.buckets) {
		return nil
	}
	return c.buckets[id-1]
}

// isNilProxy reports whether p is nil or wraps a nil pointer, such as a
// (*quantity.Unit[float64])(nil) stored in an interface.
func isNilProxy(p quantity.Proxy) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (c *Catalog) index(p quantity.Proxy) {
	for _, s := range p.Symbols().All() {
		c.symbols[s] = append(c.symbols[s], p)
	}
}
