// SPDX-License-Identifier: MPL-2.0

// Package units registers the standard unit and scale set into a catalog.
//
// Every proxy is described as data in the family tables. Register binds them
// to a catalog.Builder and returns a Set holding the typed proxies, so
// callers convert with compile-time unit types:
//
//	c, set, err := units.New(units.Options{})
//	km, err := set.Kilometer.From(set.Meter.Create(1500)) // 1.5 km
//
// Length, area, time, velocity, mass, angle, solid angle, energy, torque and
// power are float64 families. Temperature carries four units and four scales.
// Currency is a fixed-decimal family with the euro as canonical unit and
// calibratable exchange rates.
package units
