// SPDX-License-Identifier: MPL-2.0

// Package symbol holds the display symbols of a unit or scale.
//
// A Collection is ordered and deduplicated; its first entry is the default used
// for display. Symbols never drive conversion logic, they only support display
// and lookup of equivalent spellings such as "°C" and "deg.C".
package symbol

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var (
	// ErrInvalidSymbol is the sentinel error wrapped by InvalidSymbolError.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrEmptyCollection is returned when a Collection is built without symbols.
	ErrEmptyCollection = errors.New("symbol collection must not be empty")
)

type (
	// Symbol is one display spelling of a unit, e.g. "km" or "°C".
	// A valid Symbol is non-empty and contains no whitespace.
	Symbol string

	// InvalidSymbolError is returned when a Symbol is empty or contains whitespace.
	InvalidSymbolError struct {
		Value Symbol
	}

	// Collection is an immutable, ordered set of symbols.
	Collection struct {
		symbols []Symbol
	}
)

// String returns the string representation of the Symbol.
func (s Symbol) String() string { return string(s) }

// Validate returns an error if the Symbol is empty or contains whitespace.
func (s Symbol) Validate() error {
	if s == "" || strings.ContainsFunc(string(s), unicode.IsSpace) {
		return &InvalidSymbolError{Value: s}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidSymbol for errors.Is() compatibility.
func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }

// New builds a Collection from the given spellings. Duplicates are dropped,
// keeping the first occurrence.
func New(symbols ...string) (Collection, error) {
	if len(symbols) == 0 {
		return Collection{}, ErrEmptyCollection
	}
	out := make([]Symbol, 0, len(symbols))
	for _, raw := range symbols {
		s := Symbol(raw)
		if err := s.Validate(); err != nil {
			return Collection{}, err
		}
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return Collection{symbols: out}, nil
}

// Must is like New but panics on error. Intended for static unit tables.
func Must(symbols ...string) Collection {
	c, err := New(symbols...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the display symbol, or "" for the zero Collection.
func (c Collection) Default() Symbol {
	if len(c.symbols) == 0 {
		return ""
	}
	return c.symbols[0]
}

// All returns a copy of the symbols in order.
func (c Collection) All() []Symbol { return slices.Clone(c.symbols) }

// Len returns the number of symbols.
func (c Collection) Len() int { return len(c.symbols) }

// IsZero reports whether the collection holds no symbols.
func (c Collection) IsZero() bool { return len(c.symbols) == 0 }

// Contains reports whether s is one of the stored spellings.
func (c Collection) Contains(s Symbol) bool { return slices.Contains(c.symbols, s) }

// String joins the symbols with ", ".
func (c Collection) String() string {
	parts := make([]string, len(c.symbols))
	for i, s := range c.symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
