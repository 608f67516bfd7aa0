// SPDX-License-Identifier: MPL-2.0

package units

import (
	"fmt"

	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
)

// CustomUnit describes an application-defined float unit. Family names either
// a standard float family, whose sense the unit inherits, or a new family
// that is created dimensionless with this unit as its canonical unit.
type CustomUnit struct {
	Name    quantity.UnitName
	Family  quantity.FamilyName
	Factor  float64
	Symbols []string
}

func (s *Set) registerCustom(b *catalog.Builder, families map[quantity.FamilyName]familyRef, custom []CustomUnit, format string) error {
	for _, cu := range custom {
		ref, ok := families[cu.Family]
		if !ok {
			id, err := b.NewFamily(cu.Family)
			if err != nil {
				return fmt.Errorf("custom unit %q: %w", cu.Name, err)
			}
			ref = familyRef{id: id, sense: dimension.Dimensionless}
			families[cu.Family] = ref
		}
		if ref.decimal {
			return fmt.Errorf("custom unit %q: %w", cu.Name, &quantity.KindMismatchError{
				Proxy: cu.Name, Want: numeric.KindFloat, Got: numeric.KindDecimal,
			})
		}

		unit, err := newFloatUnit(ref.id, ref.sense, cu.Name, cu.Factor, cu.Symbols, format)
		if err != nil {
			return fmt.Errorf("custom unit %q: %w", cu.Name, err)
		}
		if err := b.Add(unit); err != nil {
			return fmt.Errorf("custom unit %q: %w", cu.Name, err)
		}
		s.Custom[cu.Name] = unit
	}
	return nil
}
