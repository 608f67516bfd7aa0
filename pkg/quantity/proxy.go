// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	// Proxy is the kind-agnostic view of a unit or scale that a catalog
	// stores and indexes. Identity is pointer identity of the concrete proxy.
	Proxy interface {
		Name() UnitName
		Family() FamilyID
		Sense() dimension.Sense
		Symbols() symbol.Collection
		Format() string
		Kind() numeric.Kind
	}

	// UnitProxy is a ratio unit as seen by a catalog.
	UnitProxy interface {
		Proxy
		// FactorText renders the current factor for reports.
		FactorText() string
		// HasUnitFactor reports whether the factor equals one, which holds for
		// the canonical unit of a family by convention.
		HasUnitFactor() bool
		Calibratable() bool
	}

	// ScaleProxy is an affine scale as seen by a catalog.
	ScaleProxy interface {
		Proxy
		// BaseUnit returns the ratio unit the scale is expressed in.
		BaseUnit() UnitProxy
		// OffsetText renders the offset for reports.
		OffsetText() string
	}

	// ScaleResolver finds the scale of a family bound to a given unit.
	// A sealed *catalog.Catalog satisfies it.
	ScaleResolver interface {
		Scale(family FamilyID, unit UnitProxy) (ScaleProxy, error)
	}
)
