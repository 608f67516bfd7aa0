// SPDX-License-Identifier: MPL-2.0

package units

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/quantity"
)

const (
	// StandardUnitsPerFamily is the unit count of the largest standard family.
	StandardUnitsPerFamily = 9
	// StandardScalesPerFamily is the scale count of the largest standard family.
	StandardScalesPerFamily = 4
)

// ErrUnknownCurrency is the sentinel error wrapped by UnknownCurrencyError.
var ErrUnknownCurrency = errors.New("unknown currency")

type (
	// Options tunes the standard set.
	Options struct {
		// ReservedUnits and ReservedScales are extra per-family slots kept free
		// for units registered after the standard set. Used by New only.
		ReservedUnits  int
		ReservedScales int
		// Rates maps a currency code to its units per one euro. Codes not
		// listed keep their built-in rate.
		Rates map[string]*apd.Decimal
		// Custom lists application-defined float units.
		Custom []CustomUnit
		// FloatFormat and DecimalFormat override the display layout of the
		// float families and the currency family.
		FloatFormat   string
		DecimalFormat string
	}

	// UnknownCurrencyError is returned when a rate names a code that is not a
	// standard currency.
	UnknownCurrencyError struct {
		Code string
	}

	// Set holds the registered families and typed proxies.
	Set struct {
		Length, Area, Time, Velocity, Mass, Temperature quantity.FamilyID
		Angle, SolidAngle, Energy, Torque, Power        quantity.FamilyID
		Currency                                        quantity.FamilyID

		Meter, Kilometer, Centimeter, Millimeter  *quantity.Unit[float64]
		Inch, Foot, Yard, Mile, NauticalMile      *quantity.Unit[float64]
		SquareMeter, SquareKilometer, Hectare     *quantity.Unit[float64]
		SquareFoot, Acre                          *quantity.Unit[float64]
		Second, Minute, Hour, Day                 *quantity.Unit[float64]
		MeterPerSecond, KilometerPerHour          *quantity.Unit[float64]
		MilePerHour, Knot                         *quantity.Unit[float64]
		Kilogram, Gram, Tonne, Pound, Ounce       *quantity.Unit[float64]
		Kelvin, DegreeCelsius                     *quantity.Unit[float64]
		DegreeFahrenheit, DegreeRankine           *quantity.Unit[float64]
		Radian, Degree, Gradian, Arcminute, Turn  *quantity.Unit[float64]
		Steradian, SquareDegree                   *quantity.Unit[float64]
		Joule, Kilojoule, Calorie, Kilocalorie    *quantity.Unit[float64]
		WattHour, KilowattHour, Electronvolt      *quantity.Unit[float64]
		NewtonMeter, PoundForceFoot               *quantity.Unit[float64]
		Watt, Kilowatt, Horsepower                *quantity.Unit[float64]
		KelvinScale, Celsius, Fahrenheit, Rankine *quantity.Scale[float64]
		Euro, USDollar, PoundSterling, Yen, Franc *quantity.Unit[*apd.Decimal]

		// Custom holds the units from Options.Custom by name.
		Custom map[quantity.UnitName]*quantity.Unit[float64]
	}
)

// Error implements the error interface.
func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Code)
}

// Unwrap returns ErrUnknownCurrency for errors.Is() compatibility.
func (e *UnknownCurrencyError) Unwrap() error { return ErrUnknownCurrency }

// New allocates a builder sized for the standard set plus the reserved
// slots, registers the set and seals the catalog.
func New(opts Options, builderOpts ...catalog.Option) (*catalog.Catalog, *Set, error) {
	b := catalog.NewBuilder(builderOpts...)
	if err := b.Allocate(StandardUnitsPerFamily+max(opts.ReservedUnits, len(opts.Custom)),
		StandardScalesPerFamily+max(opts.ReservedScales, 0)); err != nil {
		return nil, nil, err
	}
	set, err := Register(b, opts)
	if err != nil {
		return nil, nil, err
	}
	c, err := b.Seal()
	if err != nil {
		return nil, nil, fmt.Errorf("sealing standard catalog: %w", err)
	}
	return c, set, nil
}

// Register adds the standard families, the custom units and the currency
// rates to an allocated builder. It also records the derivations between
// standard units, which the builder checks when sealed.
func Register(b *catalog.Builder, opts Options) (*Set, error) {
	s := &Set{Custom: make(map[quantity.UnitName]*quantity.Unit[float64])}
	families := make(map[quantity.FamilyName]familyRef)

	for _, def := range s.floatFamilies() {
		id, err := registerFloatFamily(b, def, opts.FloatFormat)
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", def.name, err)
		}
		families[def.name] = familyRef{id: id, sense: def.sense}
	}
	if err := s.registerTemperature(b, opts.FloatFormat); err != nil {
		return nil, fmt.Errorf("registering temperature: %w", err)
	}
	families[temperatureFamily] = familyRef{id: s.Temperature, sense: s.Kelvin.Sense()}

	if err := s.registerCurrency(b, opts.Rates, opts.DecimalFormat); err != nil {
		return nil, fmt.Errorf("registering currency: %w", err)
	}
	families[currencyFamily] = familyRef{id: s.Currency, decimal: true}

	if err := s.registerCustom(b, families, opts.Custom, opts.FloatFormat); err != nil {
		return nil, err
	}

	for _, d := range s.derivations() {
		if err := b.Derive(d); err != nil {
			return nil, err
		}
	}
	return s, nil
}
