// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"errors"
	"testing"

	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/symbol"
)

type (
	temperatureFixture struct {
		kelvinUnit, celsiusDegree, fahrenheitDegree *Unit[float64]
		kelvin, celsius, fahrenheit                 *Scale[float64]
	}

	// mapResolver resolves scales by their underlying unit.
	mapResolver map[UnitProxy]ScaleProxy
)

func (m mapResolver) Scale(family FamilyID, unit UnitProxy) (ScaleProxy, error) {
	s, ok := m[unit]
	if !ok || s.Family() != family {
		return nil, &LookupMissError{Family: family, Unit: unit.Name()}
	}
	return s, nil
}

func mustScale(t *testing.T, spec ScaleSpec[float64]) *Scale[float64] {
	t.Helper()
	s, err := NewScale(spec)
	if err != nil {
		t.Fatalf("NewScale(%q) returned error: %v", spec.Name, err)
	}
	return s
}

func newTemperatureFixture(t *testing.T) temperatureFixture {
	t.Helper()
	var f temperatureFixture
	f.kelvinUnit = floatUnit(t, "kelvin", temperatureFamily, dimension.TemperatureSense, 1, "K")
	f.celsiusDegree = floatUnit(t, "degree Celsius", temperatureFamily, dimension.TemperatureSense, 1, "C°")
	f.fahrenheitDegree = floatUnit(t, "degree Fahrenheit", temperatureFamily, dimension.TemperatureSense, 1.8, "F°")

	f.kelvin = mustScale(t, ScaleSpec[float64]{Name: "Kelvin", Unit: f.kelvinUnit, Offset: 0, Symbols: symbol.Must("K")})
	f.celsius = mustScale(t, ScaleSpec[float64]{Name: "Celsius", Unit: f.celsiusDegree, Offset: -273.15, Symbols: symbol.Must("°C")})
	f.fahrenheit = mustScale(t, ScaleSpec[float64]{Name: "Fahrenheit", Unit: f.fahrenheitDegree, Offset: -459.67, Symbols: symbol.Must("°F")})
	return f
}

func (f temperatureFixture) resolver() mapResolver {
	return mapResolver{
		f.kelvinUnit:       f.kelvin,
		f.celsiusDegree:    f.celsius,
		f.fahrenheitDegree: f.fahrenheit,
	}
}

func TestScale_From(t *testing.T) {
	t.Parallel()

	f := newTemperatureFixture(t)

	tests := []struct {
		name string
		to   *Scale[float64]
		from Level[float64]
		want float64
	}{
		{"freezing F to C", f.celsius, f.fahrenheit.Create(32), 0},
		{"boiling F to C", f.celsius, f.fahrenheit.Create(212), 100},
		{"freezing C to K", f.kelvin, f.celsius.Create(0), 273.15},
		{"absolute zero K to F", f.fahrenheit, f.kelvin.Create(0), -459.67},
		{"body C to F", f.fahrenheit, f.celsius.Create(37), 98.6},
		{"crossover", f.fahrenheit, f.celsius.Create(-40), -40},
		{"identity", f.celsius, f.celsius.Create(21.5), 21.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.to.From(tt.from)
			if err != nil {
				t.Fatalf("From() returned error: %v", err)
			}
			if got.Scale() != tt.to {
				t.Errorf("result scale = %v, want %v", got.Scale(), tt.to)
			}
			if !got.Equivalent(tt.to.Create(tt.want)) {
				t.Errorf("From() = %v, want %v", got.Value(), tt.want)
			}
		})
	}
}

func TestScale_RoundTrip(t *testing.T) {
	t.Parallel()

	f := newTemperatureFixture(t)
	scales := []*Scale[float64]{f.kelvin, f.celsius, f.fahrenheit}
	for _, a := range scales {
		for _, b := range scales {
			for _, x := range []float64{-40, 0, 21.5, 1000} {
				there, err := a.From(b.Create(x))
				if err != nil {
					t.Fatal(err)
				}
				back, err := b.From(there)
				if err != nil {
					t.Fatal(err)
				}
				if !back.Equivalent(b.Create(x)) {
					t.Errorf("%s->%s->%s of %v = %v", b.Name(), a.Name(), b.Name(), x, back.Value())
				}
			}
		}
	}
}

func TestScale_FromIncompatibleFamily(t *testing.T) {
	t.Parallel()

	f := newTemperatureFixture(t)
	meter := floatUnit(t, "meter", lengthFamily, dimension.LengthSense, 1, "m")
	altitude := mustScale(t, ScaleSpec[float64]{Name: "altitude", Unit: meter, Symbols: symbol.Must("m.a.s.l.")})

	if _, err := f.celsius.From(altitude.Create(10)); !errors.Is(err, ErrIncompatibleFamily) {
		t.Errorf("From(foreign level) error = %v, want ErrIncompatibleFamily", err)
	}
	if _, err := f.celsius.From(Level[float64]{}); !errors.Is(err, ErrIncompatibleFamily) {
		t.Errorf("From(zero level) error = %v, want ErrIncompatibleFamily", err)
	}
	if _, err := f.celsius.FromQuantity(meter.Create(1), f.resolver()); !errors.Is(err, ErrIncompatibleFamily) {
		t.Errorf("FromQuantity(foreign quantity) error = %v, want ErrIncompatibleFamily", err)
	}
}

func TestScale_FromQuantity(t *testing.T) {
	t.Parallel()

	f := newTemperatureFixture(t)

	// 32 read on the scale bound to degree Fahrenheit.
	got, err := f.celsius.FromQuantity(f.fahrenheitDegree.Create(32), f.resolver())
	if err != nil {
		t.Fatalf("FromQuantity() returned error: %v", err)
	}
	if !got.Equivalent(f.celsius.Create(0)) {
		t.Errorf("FromQuantity(32 F°) = %v °C, want 0", got.Value())
	}

	rankineDegree := floatUnit(t, "degree Rankine", temperatureFamily, dimension.TemperatureSense, 1.8, "R°")
	_, err = f.celsius.FromQuantity(rankineDegree.Create(1), f.resolver())
	if !errors.Is(err, ErrLookupMiss) {
		t.Fatalf("FromQuantity(unbound unit) error = %v, want ErrLookupMiss", err)
	}
	var miss *LookupMissError
	if !errors.As(err, &miss) || miss.Unit != "degree Rankine" || miss.Family != temperatureFamily {
		t.Errorf("LookupMissError = %+v", miss)
	}
}

func TestNewScale_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewScale(ScaleSpec[float64]{Name: "Celsius"})
	if !errors.Is(err, ErrInvalidProxy) {
		t.Fatalf("NewScale() error = %v, want ErrInvalidProxy", err)
	}
	if !errors.Is(err, ErrMissingBaseUnit) {
		t.Errorf("error should wrap ErrMissingBaseUnit, got: %v", err)
	}
	if !errors.Is(err, symbol.ErrEmptyCollection) {
		t.Errorf("error should wrap ErrEmptyCollection, got: %v", err)
	}
}

func TestScale_Accessors(t *testing.T) {
	t.Parallel()

	f := newTemperatureFixture(t)
	if f.celsius.Family() != temperatureFamily {
		t.Errorf("Family() = %v", f.celsius.Family())
	}
	if f.celsius.BaseUnit() != UnitProxy(f.celsiusDegree) {
		t.Error("BaseUnit() should return the underlying unit")
	}
	if f.celsius.OffsetText() != "-273.15" {
		t.Errorf("OffsetText() = %q", f.celsius.OffsetText())
	}
	if got := f.celsius.Offset(); got.Unit() != f.celsiusDegree || got.Value() != -273.15 {
		t.Errorf("Offset() = %v", got)
	}
	if got := f.celsius.Create(21.5).String(); got != "21.5 °C" {
		t.Errorf("Level.String() = %q", got)
	}
	if f.celsius.String() != "Celsius [°C]" {
		t.Errorf("String() = %q", f.celsius.String())
	}
	if got := (Level[float64]{}).String(); got != "<invalid level>" {
		t.Errorf("zero Level.String() = %q", got)
	}
}
