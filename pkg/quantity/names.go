// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidFamilyID is the sentinel error wrapped by InvalidFamilyIDError.
	ErrInvalidFamilyID = errors.New("invalid family id")
	// ErrInvalidFamilyName is the sentinel error wrapped by InvalidFamilyNameError.
	ErrInvalidFamilyName = errors.New("invalid family name")
	// ErrInvalidUnitName is the sentinel error wrapped by InvalidUnitNameError.
	ErrInvalidUnitName = errors.New("invalid unit name")
)

type (
	// FamilyID identifies a set of mutually convertible units and scales.
	// Ids are dense and allocated sequentially by a catalog builder starting
	// at 1; the zero value is invalid.
	FamilyID uint16

	// InvalidFamilyIDError is returned when a FamilyID is zero.
	InvalidFamilyIDError struct {
		Value FamilyID
	}

	// FamilyName is the stable, human-readable name of a family, e.g. "length"
	// or "solid_angle". It must be non-empty and contain no whitespace.
	FamilyName string

	// InvalidFamilyNameError is returned when a FamilyName is empty or contains whitespace.
	InvalidFamilyNameError struct {
		Value FamilyName
	}

	// UnitName is the stable identifier of one unit or scale, e.g. "kilometer"
	// or "degree Celsius". It must be non-empty and not whitespace-only.
	UnitName string

	// InvalidUnitNameError is returned when a UnitName is empty or whitespace-only.
	InvalidUnitNameError struct {
		Value UnitName
	}
)

// String returns the decimal representation of the FamilyID.
func (f FamilyID) String() string { return fmt.Sprintf("family#%d", uint16(f)) }

// Validate returns an error if the FamilyID is the zero value.
func (f FamilyID) Validate() error {
	if f == 0 {
		return &InvalidFamilyIDError{Value: f}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidFamilyIDError) Error() string {
	return fmt.Sprintf("invalid family id %d: ids start at 1", uint16(e.Value))
}

// Unwrap returns ErrInvalidFamilyID for errors.Is() compatibility.
func (e *InvalidFamilyIDError) Unwrap() error { return ErrInvalidFamilyID }

// String returns the string representation of the FamilyName.
func (n FamilyName) String() string { return string(n) }

// Validate returns an error if the FamilyName is empty or contains whitespace.
func (n FamilyName) Validate() error {
	if n == "" || strings.ContainsFunc(string(n), unicode.IsSpace) {
		return &InvalidFamilyNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidFamilyNameError) Error() string {
	return fmt.Sprintf("invalid family name %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidFamilyName for errors.Is() compatibility.
func (e *InvalidFamilyNameError) Unwrap() error { return ErrInvalidFamilyName }

// String returns the string representation of the UnitName.
func (n UnitName) String() string { return string(n) }

// Validate returns an error if the UnitName is empty or whitespace-only.
func (n UnitName) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidUnitNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidUnitNameError) Error() string {
	return fmt.Sprintf("invalid unit name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidUnitName for errors.Is() compatibility.
func (e *InvalidUnitNameError) Unwrap() error { return ErrInvalidUnitName }
