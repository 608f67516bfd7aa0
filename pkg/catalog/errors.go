// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"

	"github.com/invowk/measure/pkg/quantity"
)

var (
	// ErrNotAllocated is returned by builder operations issued before Allocate.
	ErrNotAllocated = errors.New("catalog capacity not allocated")
	// ErrAlreadyAllocated is returned when Allocate is called twice.
	ErrAlreadyAllocated = errors.New("catalog capacity already allocated")
	// ErrInvalidCapacity is returned when Allocate receives a non-positive unit capacity
	// or a negative scale capacity.
	ErrInvalidCapacity = errors.New("invalid catalog capacity")
	// ErrSealed is returned by any builder operation after Seal.
	ErrSealed = errors.New("catalog builder already sealed")
	// ErrCapacityExceeded is the sentinel error wrapped by CapacityExceededError.
	ErrCapacityExceeded = errors.New("family capacity exceeded")
	// ErrDuplicateProxy is the sentinel error wrapped by DuplicateProxyError.
	ErrDuplicateProxy = errors.New("duplicate proxy")
	// ErrDuplicateFamily is the sentinel error wrapped by DuplicateFamilyError.
	ErrDuplicateFamily = errors.New("duplicate family name")
	// ErrAmbiguousScale is the sentinel error wrapped by AmbiguousScaleError.
	ErrAmbiguousScale = errors.New("ambiguous scale")
	// ErrUnknownFamily is the sentinel error wrapped by UnknownFamilyError.
	ErrUnknownFamily = errors.New("unknown family")
	// ErrUnboundScale is the sentinel error wrapped by UnboundScaleError.
	ErrUnboundScale = errors.New("scale bound to an unregistered unit")
	// ErrUnsupportedConversion is the sentinel error wrapped by UnsupportedConversionError.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	// ErrUnsupportedProxy is returned when Add receives a proxy that is
	// neither a unit nor a scale.
	ErrUnsupportedProxy = errors.New("proxy is neither a unit nor a scale")
)

type (
	// CapacityExceededError is returned when a family bucket is full.
	CapacityExceededError struct {
		Family   quantity.FamilyID
		Kind     string // "unit" or "scale"
		Capacity int
	}

	// DuplicateProxyError is returned when a proxy, or another proxy with the
	// same name, is already registered in the family.
	DuplicateProxyError struct {
		Family quantity.FamilyID
		Name   quantity.UnitName
	}

	// DuplicateFamilyError is returned when NewFamily reuses a name.
	DuplicateFamilyError struct {
		Name quantity.FamilyName
	}

	// AmbiguousScaleError is returned when a second scale is bound to a unit
	// that already has one in the same family.
	AmbiguousScaleError struct {
		Family   quantity.FamilyID
		Unit     quantity.UnitName
		Existing quantity.UnitName
		Rejected quantity.UnitName
	}

	// UnknownFamilyError is returned for a family id or name that was never
	// allocated by NewFamily.
	UnknownFamilyError struct {
		ID   quantity.FamilyID
		Name quantity.FamilyName
	}

	// UnboundScaleError is returned by Seal when a scale's underlying unit was
	// never added to the scale's family.
	UnboundScaleError struct {
		Scale quantity.UnitName
		Unit  quantity.UnitName
	}

	// UnsupportedConversionError is returned when the pair of proxies has no
	// defined conversion, such as a level converted into a ratio unit.
	UnsupportedConversionError struct {
		From quantity.UnitName
		To   quantity.UnitName
	}
)

// Error implements the error interface.
func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s holds at most %d %ss", e.Family, e.Capacity, e.Kind)
}

// Unwrap returns ErrCapacityExceeded for errors.Is() compatibility.
func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// Error implements the error interface.
func (e *DuplicateProxyError) Error() string {
	return fmt.Sprintf("proxy %q is already registered in %s", e.Name, e.Family)
}

// Unwrap returns ErrDuplicateProxy for errors.Is() compatibility.
func (e *DuplicateProxyError) Unwrap() error { return ErrDuplicateProxy }

// Error implements the error interface.
func (e *DuplicateFamilyError) Error() string {
	return fmt.Sprintf("family %q is already defined", e.Name)
}

// Unwrap returns ErrDuplicateFamily for errors.Is() compatibility.
func (e *DuplicateFamilyError) Unwrap() error { return ErrDuplicateFamily }

// Error implements the error interface.
func (e *AmbiguousScaleError) Error() string {
	return fmt.Sprintf("unit %q in %s already has scale %q; cannot also bind %q",
		e.Unit, e.Family, e.Existing, e.Rejected)
}

// Unwrap returns ErrAmbiguousScale for errors.Is() compatibility.
func (e *AmbiguousScaleError) Unwrap() error { return ErrAmbiguousScale }

// Error implements the error interface.
func (e *UnknownFamilyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown family %q", e.Name)
	}
	return fmt.Sprintf("unknown family %s", e.ID)
}

// Unwrap returns ErrUnknownFamily for errors.Is() compatibility.
func (e *UnknownFamilyError) Unwrap() error { return ErrUnknownFamily }

// Error implements the error interface.
func (e *UnboundScaleError) Error() string {
	return fmt.Sprintf("scale %q reads in unit %q, which is not registered in its family", e.Scale, e.Unit)
}

// Unwrap returns ErrUnboundScale for errors.Is() compatibility.
func (e *UnboundScaleError) Unwrap() error { return ErrUnboundScale }

// Error implements the error interface.
func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %q: a scale reading has no ratio-unit equivalent", e.From, e.To)
}

// Unwrap returns ErrUnsupportedConversion for errors.Is() compatibility.
func (e *UnsupportedConversionError) Unwrap() error { return ErrUnsupportedConversion }
