// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/measure/pkg/numeric"
)

var (
	// ErrIncompatibleFamily is the sentinel error wrapped by IncompatibleFamilyError.
	ErrIncompatibleFamily = errors.New("incompatible family")
	// ErrLookupMiss is the sentinel error wrapped by LookupMissError.
	ErrLookupMiss = errors.New("no matching proxy registered")
	// ErrKindMismatch is the sentinel error wrapped by KindMismatchError.
	ErrKindMismatch = errors.New("numeric kind mismatch")
	// ErrNotCalibratable is the sentinel error wrapped by NotCalibratableError.
	ErrNotCalibratable = errors.New("unit factor is not calibratable")
	// ErrInvalidFactor is the sentinel error wrapped by InvalidFactorError.
	ErrInvalidFactor = errors.New("invalid unit factor")
	// ErrInvalidProxy is the sentinel error wrapped by InvalidProxyError.
	ErrInvalidProxy = errors.New("invalid proxy")
	// ErrMissingBaseUnit is returned when a scale is built without an underlying unit.
	ErrMissingBaseUnit = errors.New("scale requires an underlying unit")
	// ErrInconsistentDerivation is the sentinel error wrapped by InconsistentDerivationError.
	ErrInconsistentDerivation = errors.New("inconsistent derived unit")
)

type (
	// IncompatibleFamilyError is returned when a conversion is attempted
	// between proxies of different families.
	IncompatibleFamilyError struct {
		From       UnitName
		To         UnitName
		FromFamily FamilyID
		ToFamily   FamilyID
	}

	// LookupMissError is returned when no registered proxy matches a family
	// (and, for scale lookups, an underlying unit).
	LookupMissError struct {
		Family FamilyID
		// Unit is empty for canonical-unit lookups.
		Unit UnitName
	}

	// KindMismatchError is returned when a proxy resolved at runtime stores a
	// different numeric kind than the caller's value.
	KindMismatchError struct {
		Proxy UnitName
		Want  numeric.Kind
		Got   numeric.Kind
	}

	// NotCalibratableError is returned by SetFactor on a unit whose factor is a
	// physical constant.
	NotCalibratableError struct {
		Unit UnitName
	}

	// InvalidFactorError is returned when a factor is zero or negative.
	InvalidFactorError struct {
		Unit   UnitName
		Factor string
	}

	// InvalidProxyError aggregates the field errors found while constructing
	// a unit or scale.
	InvalidProxyError struct {
		Name        UnitName
		FieldErrors []error
	}

	// InconsistentDerivationError is returned when a derived unit's sense or
	// factor does not match the units it was derived from.
	InconsistentDerivationError struct {
		Unit   UnitName
		Reason string
	}
)

// Error implements the error interface.
func (e *IncompatibleFamilyError) Error() string {
	return fmt.Sprintf("cannot convert %q (%s) to %q (%s): incompatible families",
		e.From, e.FromFamily, e.To, e.ToFamily)
}

// Unwrap returns ErrIncompatibleFamily for errors.Is() compatibility.
func (e *IncompatibleFamilyError) Unwrap() error { return ErrIncompatibleFamily }

// Error implements the error interface.
func (e *LookupMissError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("no unit registered for %s", e.Family)
	}
	return fmt.Sprintf("no scale registered for unit %q in %s", e.Unit, e.Family)
}

// Unwrap returns ErrLookupMiss for errors.Is() compatibility.
func (e *LookupMissError) Unwrap() error { return ErrLookupMiss }

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("proxy %q stores %s values, caller supplied %s", e.Proxy, e.Got, e.Want)
}

// Unwrap returns ErrKindMismatch for errors.Is() compatibility.
func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

// Error implements the error interface.
func (e *NotCalibratableError) Error() string {
	return fmt.Sprintf("unit %q has a fixed factor and cannot be calibrated", e.Unit)
}

// Unwrap returns ErrNotCalibratable for errors.Is() compatibility.
func (e *NotCalibratableError) Unwrap() error { return ErrNotCalibratable }

// Error implements the error interface.
func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("invalid factor %s for unit %q: must be greater than zero", e.Factor, e.Unit)
}

// Unwrap returns ErrInvalidFactor for errors.Is() compatibility.
func (e *InvalidFactorError) Unwrap() error { return ErrInvalidFactor }

// Error implements the error interface.
func (e *InvalidProxyError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid proxy %q: %s", e.Name, strings.Join(msgs, "; "))
}

// Unwrap exposes ErrInvalidProxy and every field error to errors.Is/As.
func (e *InvalidProxyError) Unwrap() []error {
	return append([]error{ErrInvalidProxy}, e.FieldErrors...)
}

// Error implements the error interface.
func (e *InconsistentDerivationError) Error() string {
	return fmt.Sprintf("derived unit %q is inconsistent: %s", e.Unit, e.Reason)
}

// Unwrap returns ErrInconsistentDerivation for errors.Is() compatibility.
func (e *InconsistentDerivationError) Unwrap() error { return ErrInconsistentDerivation }
