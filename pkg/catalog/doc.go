// SPDX-License-Identifier: MPL-2.0

// Package catalog is the family-indexed registry of unit and scale proxies.
//
// A catalog is populated in two phases. A Builder is allocated once, receives
// families and proxies, and is consumed by Seal:
//
//	b := catalog.NewBuilder(catalog.WithLogger(logger))
//	_ = b.Allocate(16, 4)
//	length, _ := b.NewFamily("length")
//	meter, _ := quantity.NewUnit(numeric.Float{}, quantity.UnitSpec[float64]{...})
//	_ = b.Add(meter)
//	c, err := b.Seal()
//
// The sealed Catalog only answers queries and is safe for concurrent use. It
// resolves the canonical unit of a family, the unique scale bound to a unit,
// and symbol spellings, and drives conversions between proxies that are only
// known at runtime.
package catalog
