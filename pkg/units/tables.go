// SPDX-License-Identifier: MPL-2.0

package units

import (
	"math"

	"github.com/invowk/measure/pkg/catalog"
	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

const (
	temperatureFamily quantity.FamilyName = "temperature"
	currencyFamily    quantity.FamilyName = "currency"
)

// Exact definitions of the customary units, in SI.
const (
	inchMeters         = 0.0254
	footMeters         = 0.3048
	yardMeters         = 0.9144
	mileMeters         = 1609.344
	nauticalMileMeters = 1852.0
	acreSquareMeters   = 4046.8564224
	poundKilograms     = 0.45359237
	thermoCalorieJoule = 4.184
	electronvoltJoule  = 1.602176634e-19
	poundForceFootNm   = 1.3558179483314004
	horsepowerWatts    = 745.69987158227022
)

type (
	// familyDef describes a float family; the first unit is canonical.
	familyDef struct {
		name  quantity.FamilyName
		id    *quantity.FamilyID
		sense dimension.Sense
		units []unitDef
	}

	// unitDef binds one table row to its Set field.
	unitDef struct {
		field   **quantity.Unit[float64]
		name    quantity.UnitName
		factor  float64
		symbols []string
	}

	// familyRef is what custom units need to know about an existing family.
	familyRef struct {
		id      quantity.FamilyID
		sense   dimension.Sense
		decimal bool
	}
)

func (s *Set) floatFamilies() []familyDef {
	return []familyDef{
		{name: "length", id: &s.Length, sense: dimension.LengthSense, units: []unitDef{
			{&s.Meter, "meter", 1, []string{"m", "metre"}},
			{&s.Kilometer, "kilometer", 1e-3, []string{"km"}},
			{&s.Centimeter, "centimeter", 1e2, []string{"cm"}},
			{&s.Millimeter, "millimeter", 1e3, []string{"mm"}},
			{&s.Inch, "inch", 1 / inchMeters, []string{"in", "″"}},
			{&s.Foot, "foot", 1 / footMeters, []string{"ft", "′"}},
			{&s.Yard, "yard", 1 / yardMeters, []string{"yd"}},
			{&s.Mile, "mile", 1 / mileMeters, []string{"mi"}},
			{&s.NauticalMile, "nautical mile", 1 / nauticalMileMeters, []string{"nmi", "NM"}},
		}},
		{name: "area", id: &s.Area, sense: dimension.SquareLength, units: []unitDef{
			{&s.SquareMeter, "square meter", 1, []string{"m²", "m2"}},
			{&s.SquareKilometer, "square kilometer", 1e-6, []string{"km²", "km2"}},
			{&s.Hectare, "hectare", 1e-4, []string{"ha"}},
			{&s.SquareFoot, "square foot", 1 / (footMeters * footMeters), []string{"ft²", "ft2", "sqft"}},
			{&s.Acre, "acre", 1 / acreSquareMeters, []string{"ac"}},
		}},
		{name: "time", id: &s.Time, sense: dimension.TimeSense, units: []unitDef{
			{&s.Second, "second", 1, []string{"s", "sec"}},
			{&s.Minute, "minute", 1.0 / 60, []string{"min"}},
			{&s.Hour, "hour", 1.0 / 3600, []string{"h", "hr"}},
			{&s.Day, "day", 1.0 / 86400, []string{"d"}},
		}},
		{name: "velocity", id: &s.Velocity, sense: dimension.Velocity, units: []unitDef{
			{&s.MeterPerSecond, "meter per second", 1, []string{"m/s"}},
			{&s.KilometerPerHour, "kilometer per hour", 3.6, []string{"km/h", "kph"}},
			{&s.MilePerHour, "mile per hour", 3600 / mileMeters, []string{"mph", "mi/h"}},
			{&s.Knot, "knot", 3600 / nauticalMileMeters, []string{"kn", "kt"}},
		}},
		{name: "mass", id: &s.Mass, sense: dimension.MassSense, units: []unitDef{
			{&s.Kilogram, "kilogram", 1, []string{"kg"}},
			{&s.Gram, "gram", 1e3, []string{"g"}},
			{&s.Tonne, "tonne", 1e-3, []string{"t"}},
			{&s.Pound, "pound", 1 / poundKilograms, []string{"lb", "lbs"}},
			{&s.Ounce, "ounce", 16 / poundKilograms, []string{"oz"}},
		}},
		{name: "angle", id: &s.Angle, sense: dimension.Angle, units: []unitDef{
			{&s.Radian, "radian", 1, []string{"rad"}},
			{&s.Degree, "degree", 180 / math.Pi, []string{"°", "deg"}},
			{&s.Gradian, "gradian", 200 / math.Pi, []string{"gon", "grad"}},
			{&s.Arcminute, "arcminute", 10800 / math.Pi, []string{"arcmin"}},
			{&s.Turn, "turn", 1 / (2 * math.Pi), []string{"tr", "rev"}},
		}},
		{name: "solid_angle", id: &s.SolidAngle, sense: dimension.SolidAngle, units: []unitDef{
			{&s.Steradian, "steradian", 1, []string{"sr"}},
			{&s.SquareDegree, "square degree", (180 / math.Pi) * (180 / math.Pi), []string{"deg²", "deg2"}},
		}},
		{name: "energy", id: &s.Energy, sense: dimension.Energy, units: []unitDef{
			{&s.Joule, "joule", 1, []string{"J"}},
			{&s.Kilojoule, "kilojoule", 1e-3, []string{"kJ"}},
			{&s.Calorie, "calorie", 1 / thermoCalorieJoule, []string{"cal"}},
			{&s.Kilocalorie, "kilocalorie", 1 / (thermoCalorieJoule * 1e3), []string{"kcal", "Cal"}},
			{&s.WattHour, "watt hour", 1.0 / 3600, []string{"Wh"}},
			{&s.KilowattHour, "kilowatt hour", 1 / 3.6e6, []string{"kWh"}},
			{&s.Electronvolt, "electronvolt", 1 / electronvoltJoule, []string{"eV"}},
		}},
		{name: "torque", id: &s.Torque, sense: dimension.Torque, units: []unitDef{
			{&s.NewtonMeter, "newton meter", 1, []string{"N·m", "Nm"}},
			{&s.PoundForceFoot, "pound-force foot", 1 / poundForceFootNm, []string{"lbf·ft", "lbf-ft"}},
		}},
		{name: "power", id: &s.Power, sense: dimension.Power, units: []unitDef{
			{&s.Watt, "watt", 1, []string{"W"}},
			{&s.Kilowatt, "kilowatt", 1e-3, []string{"kW"}},
			{&s.Horsepower, "horsepower", 1 / horsepowerWatts, []string{"hp"}},
		}},
	}
}

func registerFloatFamily(b *catalog.Builder, def familyDef, format string) (quantity.FamilyID, error) {
	id, err := b.NewFamily(def.name)
	if err != nil {
		return 0, err
	}
	*def.id = id
	for _, u := range def.units {
		unit, err := newFloatUnit(id, def.sense, u.name, u.factor, u.symbols, format)
		if err != nil {
			return 0, err
		}
		if err := b.Add(unit); err != nil {
			return 0, err
		}
		*u.field = unit
	}
	return id, nil
}

func newFloatUnit(family quantity.FamilyID, sense dimension.Sense, name quantity.UnitName, factor float64, symbols []string, format string) (*quantity.Unit[float64], error) {
	syms, err := symbol.New(symbols...)
	if err != nil {
		return nil, err
	}
	return quantity.NewUnit(numeric.Float{}, quantity.UnitSpec[float64]{
		Name:    name,
		Family:  family,
		Sense:   sense,
		Factor:  factor,
		Symbols: syms,
		Format:  format,
	})
}

// registerTemperature adds one degree unit per scale, each scale reading in
// its own unit so the catalog can resolve the scale of a bare quantity.
// Offsets are the scale readings at absolute zero.
func (s *Set) registerTemperature(b *catalog.Builder, format string) error {
	id, err := b.NewFamily(temperatureFamily)
	if err != nil {
		return err
	}
	s.Temperature = id

	rows := []struct {
		unit        unitDef
		scale       **quantity.Scale[float64]
		scaleName   quantity.UnitName
		offset      float64
		scaleSymbol []string
	}{
		{unitDef{&s.Kelvin, "kelvin", 1, []string{"K"}}, &s.KelvinScale, "Kelvin", 0, []string{"K"}},
		{unitDef{&s.DegreeCelsius, "degree Celsius", 1, []string{"C°", "Cdeg"}}, &s.Celsius, "Celsius", -273.15, []string{"°C", "degC"}},
		{unitDef{&s.DegreeFahrenheit, "degree Fahrenheit", 1.8, []string{"F°", "Fdeg"}}, &s.Fahrenheit, "Fahrenheit", -459.67, []string{"°F", "degF"}},
		{unitDef{&s.DegreeRankine, "degree Rankine", 1.8, []string{"R°", "Rdeg"}}, &s.Rankine, "Rankine", 0, []string{"°R", "degR"}},
	}

	for _, row := range rows {
		unit, err := newFloatUnit(id, dimension.TemperatureSense, row.unit.name, row.unit.factor, row.unit.symbols, format)
		if err != nil {
			return err
		}
		if err := b.Add(unit); err != nil {
			return err
		}
		*row.unit.field = unit
	}
	for _, row := range rows {
		syms, err := symbol.New(row.scaleSymbol...)
		if err != nil {
			return err
		}
		scale, err := quantity.NewScale(quantity.ScaleSpec[float64]{
			Name:    row.scaleName,
			Unit:    *row.unit.field,
			Offset:  row.offset,
			Symbols: syms,
		})
		if err != nil {
			return err
		}
		if err := b.Add(scale); err != nil {
			return err
		}
		*row.scale = scale
	}
	return nil
}

func (s *Set) derivations() []quantity.Derivation {
	return []quantity.Derivation{
		quantity.Power(s.SquareMeter, s.Meter, 2),
		quantity.Power(s.SquareKilometer, s.Kilometer, 2),
		quantity.Power(s.SquareFoot, s.Foot, 2),
		quantity.Quotient(s.MeterPerSecond, s.Meter, s.Second),
		quantity.Quotient(s.KilometerPerHour, s.Kilometer, s.Hour),
		quantity.Quotient(s.MilePerHour, s.Mile, s.Hour),
		quantity.Quotient(s.Knot, s.NauticalMile, s.Hour),
		quantity.Product(s.WattHour, s.Watt, s.Hour),
		quantity.Product(s.KilowattHour, s.Kilowatt, s.Hour),
		quantity.Power(s.SquareDegree, s.Degree, 2),
	}
}
