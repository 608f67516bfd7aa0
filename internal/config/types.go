// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/units"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultReservedUnits is the default number of free unit slots per family.
	DefaultReservedUnits = 32
	// DefaultReservedScales is the default number of free scale slots per family.
	DefaultReservedScales = 8
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidRate is the sentinel error wrapped by InvalidRateError.
	ErrInvalidRate = errors.New("invalid currency rate")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidRateError is returned when a currency rate is not a positive decimal.
	InvalidRateError struct {
		Code  string
		Value string
		Cause error
	}

	// InvalidConfigError aggregates the field errors of a loaded configuration.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Catalog sizes the unit catalog
		Catalog CatalogConfig `json:"catalog" mapstructure:"catalog"`
		// Currency calibrates exchange rates
		Currency CurrencyConfig `json:"currency" mapstructure:"currency"`
		// Units lists application-defined float units
		Units []UnitEntry `json:"units" mapstructure:"units"`
		// Display sets the default number layouts
		Display DisplayConfig `json:"display" mapstructure:"display"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// CatalogConfig reserves catalog capacity for units added after the standard set.
	CatalogConfig struct {
		ReservedUnits  int `json:"reserved_units" mapstructure:"reserved_units"`
		ReservedScales int `json:"reserved_scales" mapstructure:"reserved_scales"`
	}

	// CurrencyConfig overrides the built-in exchange rates.
	CurrencyConfig struct {
		// Rates maps a currency code to its units per one euro, as a decimal
		// string so no precision is lost to float parsing.
		Rates map[string]string `json:"rates" mapstructure:"rates"`
	}

	// UnitEntry defines one custom unit.
	UnitEntry struct {
		Name    string   `json:"name" mapstructure:"name"`
		Family  string   `json:"family" mapstructure:"family"`
		Factor  float64  `json:"factor" mapstructure:"factor"`
		Symbols []string `json:"symbols" mapstructure:"symbols"`
	}

	// DisplayConfig sets printf layouts for raw values.
	DisplayConfig struct {
		FloatFormat   string `json:"float_format" mapstructure:"float_format"`
		DecimalFormat string `json:"decimal_format" mapstructure:"decimal_format"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an error if the ColorScheme is not one of the defined schemes.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidRateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("currency.rates.%s: invalid rate %q: %v", e.Code, e.Value, e.Cause)
	}
	return fmt.Sprintf("currency.rates.%s: rate %q must be greater than zero", e.Code, e.Value)
}

// Unwrap returns ErrInvalidRate for errors.Is() compatibility.
func (e *InvalidRateError) Unwrap() error { return ErrInvalidRate }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Unwrap exposes ErrInvalidConfig and every field error to errors.Is/As.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// ParsedRates parses the configured exchange rates.
func (c CurrencyConfig) ParsedRates() (map[string]*apd.Decimal, error) {
	if len(c.Rates) == 0 {
		return nil, nil
	}
	var arith numeric.Decimal
	out := make(map[string]*apd.Decimal, len(c.Rates))
	for code, raw := range c.Rates {
		rate, err := arith.Parse(raw)
		if err != nil {
			return nil, &InvalidRateError{Code: code, Value: raw, Cause: err}
		}
		if rate.Sign() <= 0 {
			return nil, &InvalidRateError{Code: code, Value: raw}
		}
		out[code] = rate
	}
	return out, nil
}

// Validate checks the constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Currency.ParsedRates(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]int, len(c.Units))
	for i, u := range c.Units {
		if first, dup := seen[u.Name]; dup {
			errs = append(errs, fmt.Errorf("units[%d]: duplicate unit name %q (same as units[%d])", i, u.Name, first))
			continue
		}
		seen[u.Name] = i
		if u.Factor <= 0 {
			errs = append(errs, fmt.Errorf("units[%d]: factor of %q must be greater than zero", i, u.Name))
		}
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// UnitsOptions maps the configuration onto the standard unit set options.
func (c *Config) UnitsOptions() (units.Options, error) {
	rates, err := c.Currency.ParsedRates()
	if err != nil {
		return units.Options{}, err
	}
	custom := make([]units.CustomUnit, len(c.Units))
	for i, u := range c.Units {
		custom[i] = units.CustomUnit{
			Name:    quantity.UnitName(u.Name),
			Family:  quantity.FamilyName(u.Family),
			Factor:  u.Factor,
			Symbols: u.Symbols,
		}
	}
	return units.Options{
		ReservedUnits:  c.Catalog.ReservedUnits,
		ReservedScales: c.Catalog.ReservedScales,
		Rates:          rates,
		Custom:         custom,
		FloatFormat:    c.Display.FloatFormat,
		DecimalFormat:  c.Display.DecimalFormat,
	}, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			ReservedUnits:  DefaultReservedUnits,
			ReservedScales: DefaultReservedScales,
		},
		Currency: CurrencyConfig{Rates: map[string]string{}},
		Units:    []UnitEntry{},
		Display: DisplayConfig{
			FloatFormat:   "%g",
			DecimalFormat: units.DefaultDecimalFormat,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
