// SPDX-License-Identifier: MPL-2.0

// Package dimension models the physical nature of a unit as a vector of
// exponents over the base dimensions (length, time, mass, temperature,
// electric current, amount of substance, luminous intensity, and an abstract
// "other" slot used for non-physical scalars such as money).
//
// A Sense documents how a unit composes from base dimensions. It is consulted
// when a catalog is built, never during conversion: two units with the same
// Sense (energy and torque, for example) are not convertible unless they belong
// to the same family.
//
// This package is a leaf dependency: it imports only the standard library.
package dimension
