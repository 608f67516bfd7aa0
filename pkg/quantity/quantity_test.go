// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"errors"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/symbol"
)

const (
	lengthFamily FamilyID = iota + 1
	massFamily
	temperatureFamily
	currencyFamily
)

func mustUnit[T any](t *testing.T, arith numeric.Arithmetic[T], spec UnitSpec[T]) *Unit[T] {
	t.Helper()
	u, err := NewUnit(arith, spec)
	if err != nil {
		t.Fatalf("NewUnit(%q) returned error: %v", spec.Name, err)
	}
	return u
}

func floatUnit(t *testing.T, name UnitName, family FamilyID, sense dimension.Sense, factor float64, symbols ...string) *Unit[float64] {
	t.Helper()
	return mustUnit(t, numeric.Float{}, UnitSpec[float64]{
		Name:    name,
		Family:  family,
		Sense:   sense,
		Factor:  factor,
		Symbols: symbol.Must(symbols...),
	})
}

func TestNewUnit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    UnitSpec[float64]
		wantErr error
	}{
		{"missing name", UnitSpec[float64]{Family: 1, Factor: 1, Symbols: symbol.Must("m")}, ErrInvalidUnitName},
		{"zero family", UnitSpec[float64]{Name: "meter", Factor: 1, Symbols: symbol.Must("m")}, ErrInvalidFamilyID},
		{"no symbols", UnitSpec[float64]{Name: "meter", Family: 1, Factor: 1}, symbol.ErrEmptyCollection},
		{"zero factor", UnitSpec[float64]{Name: "meter", Family: 1, Symbols: symbol.Must("m")}, ErrInvalidFactor},
		{"negative factor", UnitSpec[float64]{Name: "meter", Family: 1, Factor: -1, Symbols: symbol.Must("m")}, ErrInvalidFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUnit(numeric.Float{}, tt.spec)
			if err == nil {
				t.Fatal("NewUnit() returned nil error")
			}
			if !errors.Is(err, ErrInvalidProxy) {
				t.Errorf("error should wrap ErrInvalidProxy, got: %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error should wrap %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestUnit_FromRatio(t *testing.T) {
	t.Parallel()

	meter := floatUnit(t, "meter", lengthFamily, dimension.LengthSense, 1, "m")
	kilometer := floatUnit(t, "kilometer", lengthFamily, dimension.LengthSense, 0.001, "km")
	foot := floatUnit(t, "foot", lengthFamily, dimension.LengthSense, 1/0.3048, "ft")

	km, err := kilometer.From(meter.Create(1500))
	if err != nil {
		t.Fatalf("kilometer.From(1500 m) returned error: %v", err)
	}
	if km.Value() != 1.5 {
		t.Errorf("kilometer.From(1500 m) = %v, want 1.5", km.Value())
	}
	if km.Unit() != kilometer {
		t.Error("result should be tagged with the target unit")
	}

	units := []*Unit[float64]{meter, kilometer, foot}
	for _, a := range units {
		for _, b := range units {
			for _, x := range []float64{0, 1, -2.5, 1234.5678} {
				got, err := a.From(b.Create(x))
				if err != nil {
					t.Fatalf("%s.From(%s) returned error: %v", a.Name(), b.Name(), err)
				}
				want := x
				if a != b {
					want = x * (a.Factor() / b.Factor())
				}
				if got.Value() != want {
					t.Errorf("%s.From(%v %s) = %v, want %v", a.Name(), x, b.Name(), got.Value(), want)
				}

				back, err := b.From(got)
				if err != nil {
					t.Fatal(err)
				}
				if !back.Equivalent(b.Create(x)) {
					t.Errorf("round trip %s->%s->%s of %v = %v", b.Name(), a.Name(), b.Name(), x, back.Value())
				}
			}
		}
	}
}

func TestUnit_FromIncompatibleFamily(t *testing.T) {
	t.Parallel()

	meter := floatUnit(t, "meter", lengthFamily, dimension.LengthSense, 1, "m")
	kilogram := floatUnit(t, "kilogram", massFamily, dimension.MassSense, 1, "kg")

	_, err := meter.From(kilogram.Create(3))
	if !errors.Is(err, ErrIncompatibleFamily) {
		t.Fatalf("meter.From(3 kg) error = %v, want ErrIncompatibleFamily", err)
	}
	var famErr *IncompatibleFamilyError
	if !errors.As(err, &famErr) {
		t.Fatalf("error should be *IncompatibleFamilyError, got: %T", err)
	}
	if famErr.From != "kilogram" || famErr.To != "meter" || famErr.FromFamily != massFamily || famErr.ToFamily != lengthFamily {
		t.Errorf("IncompatibleFamilyError = %+v", famErr)
	}

	if _, err := meter.From(Quantity[float64]{}); !errors.Is(err, ErrIncompatibleFamily) {
		t.Errorf("meter.From(zero) error = %v, want ErrIncompatibleFamily", err)
	}
	if meter.Create(1).Equivalent(kilogram.Create(1)) {
		t.Error("quantities of different families must not be equivalent")
	}
}

func TestUnit_Calibration(t *testing.T) {
	t.Parallel()

	var dec numeric.Decimal
	euro := mustUnit(t, dec, UnitSpec[*apd.Decimal]{
		Name: "euro", Family: currencyFamily, Sense: dimension.MonetarySense,
		Factor: dec.One(), Symbols: symbol.Must("EUR", "€"), Format: "%.2f",
	})
	dollar := mustUnit(t, dec, UnitSpec[*apd.Decimal]{
		Name: "US dollar", Family: currencyFamily, Sense: dimension.MonetarySense,
		Factor: numeric.Dec("1.0842"), Symbols: symbol.Must("USD", "$"), Format: "%.2f",
		Calibratable: true,
	})

	usd, err := dollar.From(euro.Create(numeric.Dec("100")))
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equivalent(usd.Value(), numeric.Dec("108.42")) {
		t.Errorf("100 EUR in USD = %s, want 108.42", usd.Value().Text('f'))
	}
	if usd.String() != "108.42 USD" {
		t.Errorf("String() = %q, want %q", usd.String(), "108.42 USD")
	}

	back, err := euro.From(usd)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equivalent(back.Value(), numeric.Dec("100")) {
		t.Errorf("decimal round trip = %s, want exactly 100", back.Value().Text('f'))
	}

	if err := dollar.SetFactor(numeric.Dec("1.10")); err != nil {
		t.Fatalf("SetFactor returned error: %v", err)
	}
	usd, err = dollar.From(euro.Create(numeric.Dec("100")))
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equivalent(usd.Value(), numeric.Dec("110")) {
		t.Errorf("after calibration 100 EUR = %s USD, want 110", usd.Value().Text('f'))
	}

	if err := dollar.SetFactor(dec.Zero()); !errors.Is(err, ErrInvalidFactor) {
		t.Errorf("SetFactor(0) error = %v, want ErrInvalidFactor", err)
	}
	if err := euro.SetFactor(numeric.Dec("2")); !errors.Is(err, ErrNotCalibratable) {
		t.Errorf("euro.SetFactor error = %v, want ErrNotCalibratable", err)
	}

	dollar.SetFormat("%.3f")
	if got := dollar.Create(numeric.Dec("1")).String(); got != "1.000 USD" {
		t.Errorf("String() after SetFormat = %q", got)
	}
}

func TestUnit_Accessors(t *testing.T) {
	t.Parallel()

	meter := floatUnit(t, "meter", lengthFamily, dimension.LengthSense, 1, "m", "metre")
	if meter.Kind() != numeric.KindFloat {
		t.Errorf("Kind() = %q", meter.Kind())
	}
	if !meter.HasUnitFactor() || meter.Calibratable() {
		t.Error("meter should have a unit factor and be fixed")
	}
	if meter.String() != "meter [m]" {
		t.Errorf("String() = %q", meter.String())
	}
	if meter.FactorText() != "1" {
		t.Errorf("FactorText() = %q", meter.FactorText())
	}
	if got := meter.Create(2.5).String(); got != "2.5 m" {
		t.Errorf("Quantity.String() = %q", got)
	}
	if got := (Quantity[float64]{}).String(); got != "<invalid quantity>" {
		t.Errorf("zero Quantity.String() = %q", got)
	}
}

func TestFamilyID_Validate(t *testing.T) {
	t.Parallel()

	if err := FamilyID(0).Validate(); !errors.Is(err, ErrInvalidFamilyID) {
		t.Errorf("FamilyID(0).Validate() error = %v", err)
	}
	if err := FamilyID(7).Validate(); err != nil {
		t.Errorf("FamilyID(7).Validate() error = %v", err)
	}
	if FamilyID(7).String() != "family#7" {
		t.Errorf("FamilyID(7).String() = %q", FamilyID(7).String())
	}
}

func TestNames_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"family name ok", FamilyName("solid_angle").Validate(), nil},
		{"family name with space", FamilyName("solid angle").Validate(), ErrInvalidFamilyName},
		{"empty family name", FamilyName("").Validate(), ErrInvalidFamilyName},
		{"unit name with space ok", UnitName("degree Celsius").Validate(), nil},
		{"blank unit name", UnitName("  ").Validate(), ErrInvalidUnitName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.wantErr == nil {
				if tt.err != nil {
					t.Errorf("unexpected error: %v", tt.err)
				}
				return
			}
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("error = %v, want %v", tt.err, tt.wantErr)
			}
		})
	}
}
