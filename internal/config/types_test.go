// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := cs.Validate(); err != nil {
			t.Errorf("%q.Validate() = %v", cs, err)
		}
	}
	err := ColorScheme("sepia").Validate()
	var csErr *InvalidColorSchemeError
	if !errors.As(err, &csErr) || csErr.Value != "sepia" || !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Validate() = %v", err)
	}
}

func TestCurrencyConfig_ParsedRates(t *testing.T) {
	t.Parallel()

	rates, err := CurrencyConfig{Rates: map[string]string{"USD": "1.0842"}}.ParsedRates()
	if err != nil {
		t.Fatal(err)
	}
	if rates["USD"].String() != "1.0842" {
		t.Errorf("Rates[USD] = %s", rates["USD"])
	}

	tests := []struct {
		name  string
		value string
	}{
		{"garbage", "abc"},
		{"zero", "0"},
		{"negative", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := CurrencyConfig{Rates: map[string]string{"GBP": tt.value}}.ParsedRates()
			var rateErr *InvalidRateError
			if !errors.As(err, &rateErr) || rateErr.Code != "GBP" || !errors.Is(err, ErrInvalidRate) {
				t.Errorf("ParsedRates() error = %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = "neon"
	cfg.Units = []UnitEntry{
		{Name: "a", Family: "count", Factor: 1},
		{Name: "a", Family: "count", Factor: 2},
		{Name: "b", Family: "count", Factor: -1},
	}
	err := cfg.Validate()
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %v, want InvalidConfigError", err)
	}
	if len(invalid.FieldErrors) != 3 {
		t.Errorf("FieldErrors = %v, want 3 entries", invalid.FieldErrors)
	}
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Validate() error chain = %v", err)
	}
}

func TestConfig_UnitsOptions(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Currency.Rates = map[string]string{"CHF": "0.95"}
	cfg.Units = []UnitEntry{{Name: "furlong", Family: "length", Factor: 0.25, Symbols: []string{"fur"}}}

	opts, err := cfg.UnitsOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.ReservedUnits != DefaultReservedUnits || opts.ReservedScales != DefaultReservedScales {
		t.Errorf("reserved = %d/%d", opts.ReservedUnits, opts.ReservedScales)
	}
	if opts.Rates["CHF"].String() != "0.95" {
		t.Errorf("Rates[CHF] = %v", opts.Rates["CHF"])
	}
	if len(opts.Custom) != 1 || opts.Custom[0].Name != "furlong" || opts.Custom[0].Family != "length" {
		t.Errorf("Custom = %+v", opts.Custom)
	}
	if opts.FloatFormat != "%g" || opts.DecimalFormat != "%.2f" {
		t.Errorf("formats = %q, %q", opts.FloatFormat, opts.DecimalFormat)
	}
}
