// SPDX-License-Identifier: MPL-2.0

package units

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

// DefaultDecimalFormat renders currency amounts with two fraction digits.
const DefaultDecimalFormat = "%.2f"

type currencyDef struct {
	field   **quantity.Unit[*apd.Decimal]
	name    quantity.UnitName
	rate    string // units per one euro
	symbols []string
}

// Currencies returns the currency units in registration order; the euro is first.
func (s *Set) Currencies() []*quantity.Unit[*apd.Decimal] {
	return []*quantity.Unit[*apd.Decimal]{s.Euro, s.USDollar, s.PoundSterling, s.Yen, s.Franc}
}

func (s *Set) currencyTable() []currencyDef {
	return []currencyDef{
		{&s.Euro, "euro", "1", []string{"EUR", "€"}},
		{&s.USDollar, "US dollar", "1.0842", []string{"USD", "$", "US$"}},
		{&s.PoundSterling, "pound sterling", "0.8537", []string{"GBP", "£"}},
		{&s.Yen, "yen", "162.35", []string{"JPY", "¥"}},
		{&s.Franc, "Swiss franc", "0.9412", []string{"CHF", "Fr."}},
	}
}

// registerCurrency adds the decimal currency family. Every currency except the
// canonical euro is calibratable; rates override the built-in factors by code.
func (s *Set) registerCurrency(b *catalog.Builder, rates map[string]*apd.Decimal, format string) error {
	id, err := b.NewFamily(currencyFamily)
	if err != nil {
		return err
	}
	s.Currency = id
	if format == "" {
		format = DefaultDecimalFormat
	}

	var arith numeric.Decimal
	byCode := make(map[string]*quantity.Unit[*apd.Decimal])
	for i, def := range s.currencyTable() {
		factor, err := arith.Parse(def.rate)
		if err != nil {
			return err
		}
		syms, err := symbol.New(def.symbols...)
		if err != nil {
			return err
		}
		unit, err := quantity.NewUnit(arith, quantity.UnitSpec[*apd.Decimal]{
			Name:         def.name,
			Family:       id,
			Sense:        dimension.MonetarySense,
			Factor:       factor,
			Symbols:      syms,
			Format:       format,
			Calibratable: i > 0,
		})
		if err != nil {
			return err
		}
		if err := b.Add(unit); err != nil {
			return err
		}
		*def.field = unit
		byCode[string(syms.Default())] = unit
	}

	for code, rate := range rates {
		unit, ok := byCode[code]
		if !ok {
			return &UnknownCurrencyError{Code: code}
		}
		if err := unit.SetFactor(rate); err != nil {
			return err
		}
	}
	return nil
}
