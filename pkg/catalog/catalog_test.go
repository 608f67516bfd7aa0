// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/invowk/measure/pkg/dimension"
	"github.com/invowk/measure/pkg/numeric"
	"github.com/invowk/measure/pkg/quantity"
	"github.com/invowk/measure/pkg/symbol"
)

type fixture struct {
	catalog                       *Catalog
	length, temperature, currency quantity.FamilyID
	meter, kilometer              *quantity.Unit[float64]
	kelvinUnit, celsiusDeg        *quantity.Unit[float64]
	fahrDeg                       *quantity.Unit[float64]
	kelvin, celsius, fahrenheit   *quantity.Scale[float64]
	euro, dollar                  *quantity.Unit[*apd.Decimal]
}

func newUnit(t *testing.T, family quantity.FamilyID, name quantity.UnitName, sense dimension.Sense, factor float64, symbols ...string) *quantity.Unit[float64] {
	t.Helper()
	u, err := quantity.NewUnit(numeric.Float{}, quantity.UnitSpec[float64]{
		Name: name, Family: family, Sense: sense, Factor: factor, Symbols: symbol.Must(symbols...),
	})
	if err != nil {
		t.Fatalf("NewUnit(%q): %v", name, err)
	}
	return u
}

func newScale(t *testing.T, name quantity.UnitName, unit *quantity.Unit[float64], offset float64, symbols ...string) *quantity.Scale[float64] {
	t.Helper()
	s, err := quantity.NewScale(quantity.ScaleSpec[float64]{
		Name: name, Unit: unit, Offset: offset, Symbols: symbol.Must(symbols...),
	})
	if err != nil {
		t.Fatalf("NewScale(%q): %v", name, err)
	}
	return s
}

func newDecimalUnit(t *testing.T, family quantity.FamilyID, name quantity.UnitName, factor string, symbols ...string) *quantity.Unit[*apd.Decimal] {
	t.Helper()
	u, err := quantity.NewUnit(numeric.Decimal{}, quantity.UnitSpec[*apd.Decimal]{
		Name: name, Family: family, Sense: dimension.MonetarySense, Factor: numeric.Dec(factor),
		Symbols: symbol.Must(symbols...), Format: "%.2f", Calibratable: factor != "1",
	})
	if err != nil {
		t.Fatalf("NewUnit(%q): %v", name, err)
	}
	return u
}

func mustFamily(t *testing.T, b *Builder, name quantity.FamilyName) quantity.FamilyID {
	t.Helper()
	id, err := b.NewFamily(name)
	if err != nil {
		t.Fatalf("NewFamily(%q): %v", name, err)
	}
	return id
}

func mustAdd(t *testing.T, b *Builder, proxies ...quantity.Proxy) {
	t.Helper()
	for _, p := range proxies {
		if err := b.Add(p); err != nil {
			t.Fatalf("Add(%q): %v", p.Name(), err)
		}
	}
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	var f fixture
	b := NewBuilder()
	if err := b.Allocate(8, 4); err != nil {
		t.Fatal(err)
	}
	f.length = mustFamily(t, b, "length")
	f.temperature = mustFamily(t, b, "temperature")
	f.currency = mustFamily(t, b, "currency")

	f.meter = newUnit(t, f.length, "meter", dimension.LengthSense, 1, "m")
	f.kilometer = newUnit(t, f.length, "kilometer", dimension.LengthSense, 0.001, "km")
	f.kelvinUnit = newUnit(t, f.temperature, "kelvin", dimension.TemperatureSense, 1, "K")
	f.celsiusDeg = newUnit(t, f.temperature, "degree Celsius", dimension.TemperatureSense, 1, "C°")
	f.fahrDeg = newUnit(t, f.temperature, "degree Fahrenheit", dimension.TemperatureSense, 1.8, "F°")
	f.kelvin = newScale(t, "Kelvin", f.kelvinUnit, 0, "K")
	f.celsius = newScale(t, "Celsius", f.celsiusDeg, -273.15, "°C")
	f.fahrenheit = newScale(t, "Fahrenheit", f.fahrDeg, -459.67, "°F")
	f.euro = newDecimalUnit(t, f.currency, "euro", "1", "EUR", "€")
	f.dollar = newDecimalUnit(t, f.currency, "US dollar", "1.0842", "USD", "$")

	mustAdd(t, b, f.meter, f.kilometer,
		f.kelvinUnit, f.celsiusDeg, f.fahrDeg, f.kelvin, f.celsius, f.fahrenheit,
		f.euro, f.dollar)

	c, err := b.Seal()
	if err != nil {
		t.Fatalf("Seal(): %v", err)
	}
	f.catalog = c
	return f
}

func TestBuilder_Lifecycle(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if _, err := b.NewFamily("length"); !errors.Is(err, ErrNotAllocated) {
		t.Errorf("NewFamily before Allocate error = %v, want ErrNotAllocated", err)
	}
	if _, err := b.Seal(); !errors.Is(err, ErrNotAllocated) {
		t.Errorf("Seal before Allocate error = %v, want ErrNotAllocated", err)
	}
	if err := b.Allocate(0, 1); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Allocate(0, 1) error = %v, want ErrInvalidCapacity", err)
	}
	if err := b.Allocate(4, 0); err != nil {
		t.Fatalf("Allocate(4, 0) error = %v", err)
	}
	if err := b.Allocate(4, 0); !errors.Is(err, ErrAlreadyAllocated) {
		t.Errorf("second Allocate error = %v, want ErrAlreadyAllocated", err)
	}

	first := mustFamily(t, b, "length")
	second := mustFamily(t, b, "mass")
	if first != 1 || second != 2 {
		t.Errorf("family ids = %d, %d, want 1, 2", first, second)
	}
	if _, err := b.NewFamily("length"); !errors.Is(err, ErrDuplicateFamily) {
		t.Errorf("duplicate NewFamily error = %v, want ErrDuplicateFamily", err)
	}
	if _, err := b.NewFamily("solid angle"); !errors.Is(err, quantity.ErrInvalidFamilyName) {
		t.Errorf("NewFamily(invalid) error = %v, want ErrInvalidFamilyName", err)
	}

	if _, err := b.Seal(); err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if _, err := b.NewFamily("time"); !errors.Is(err, ErrSealed) {
		t.Errorf("NewFamily after Seal error = %v, want ErrSealed", err)
	}
	if err := b.Add(newUnit(t, first, "meter", dimension.LengthSense, 1, "m")); !errors.Is(err, ErrSealed) {
		t.Errorf("Add after Seal error = %v, want ErrSealed", err)
	}
	if _, err := b.Seal(); !errors.Is(err, ErrSealed) {
		t.Errorf("second Seal error = %v, want ErrSealed", err)
	}
}

func TestBuilder_AddErrors(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if err := b.Allocate(2, 1); err != nil {
		t.Fatal(err)
	}
	temp := mustFamily(t, b, "temperature")

	kelvinUnit := newUnit(t, temp, "kelvin", dimension.TemperatureSense, 1, "K")
	rankineDeg := newUnit(t, temp, "degree Rankine", dimension.TemperatureSense, 1.8, "R°")
	mustAdd(t, b, kelvinUnit, rankineDeg)

	var capErr *CapacityExceededError
	err := b.Add(newUnit(t, temp, "degree Celsius", dimension.TemperatureSense, 1, "C°"))
	if !errors.As(err, &capErr) || capErr.Kind != "unit" || capErr.Capacity != 2 {
		t.Errorf("Add over unit capacity error = %v", err)
	}

	if err := b.Add(kelvinUnit); !errors.Is(err, ErrDuplicateProxy) {
		t.Errorf("Add(duplicate) error = %v, want ErrDuplicateProxy", err)
	}
	if err := b.Add(newUnit(t, 99, "meter", dimension.LengthSense, 1, "m")); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("Add(unknown family) error = %v, want ErrUnknownFamily", err)
	}
	if err := b.Add(nil); !errors.Is(err, ErrUnsupportedProxy) {
		t.Errorf("Add(nil) error = %v, want ErrUnsupportedProxy", err)
	}

	mustAdd(t, b, newScale(t, "Kelvin", kelvinUnit, 0, "K"))
	err = b.Add(newScale(t, "Rankine", rankineDeg, 0, "°R"))
	if !errors.As(err, &capErr) || capErr.Kind != "scale" {
		t.Errorf("Add over scale capacity error = %v", err)
	}
}

func TestBuilder_AmbiguousScale(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if err := b.Allocate(4, 4); err != nil {
		t.Fatal(err)
	}
	temp := mustFamily(t, b, "temperature")
	kelvinUnit := newUnit(t, temp, "kelvin", dimension.TemperatureSense, 1, "K")
	mustAdd(t, b, kelvinUnit, newScale(t, "Kelvin", kelvinUnit, 0, "K"))

	err := b.Add(newScale(t, "Celsius", kelvinUnit, -273.15, "°C"))
	var ambErr *AmbiguousScaleError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Add(second scale on kelvin) error = %v, want *AmbiguousScaleError", err)
	}
	if ambErr.Existing != "Kelvin" || ambErr.Rejected != "Celsius" || ambErr.Unit != "kelvin" {
		t.Errorf("AmbiguousScaleError = %+v", ambErr)
	}
}

func TestBuilder_SealValidation(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if err := b.Allocate(4, 4); err != nil {
		t.Fatal(err)
	}
	temp := mustFamily(t, b, "temperature")
	area := mustFamily(t, b, "area")
	length := mustFamily(t, b, "length")

	orphan := newUnit(t, temp, "degree Celsius", dimension.TemperatureSense, 1, "C°")
	mustAdd(t, b, newUnit(t, temp, "kelvin", dimension.TemperatureSense, 1, "K"))
	mustAdd(t, b, newScale(t, "Celsius", orphan, -273.15, "°C"))

	meter := newUnit(t, length, "meter", dimension.LengthSense, 1, "m")
	hectare := newUnit(t, area, "hectare", dimension.SquareLength, 1e-4, "ha")
	mustAdd(t, b, meter, hectare)
	if err := b.Derive(quantity.Product(hectare, meter, meter)); err != nil {
		t.Fatal(err)
	}

	_, err := b.Seal()
	if !errors.Is(err, ErrUnboundScale) {
		t.Errorf("Seal() error = %v, want ErrUnboundScale", err)
	}
	if !errors.Is(err, quantity.ErrInconsistentDerivation) {
		t.Errorf("Seal() error = %v, want ErrInconsistentDerivation", err)
	}
}

func TestBuilder_SealWarnsOnCanonicalFactor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := NewBuilder(WithLogger(logger))
	if err := b.Allocate(2, 0); err != nil {
		t.Fatal(err)
	}
	length := mustFamily(t, b, "length")
	mustAdd(t, b, newUnit(t, length, "kilometer", dimension.LengthSense, 0.001, "km"))
	if _, err := b.Seal(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "canonical unit factor is not one") || !strings.Contains(out, "unit=kilometer") {
		t.Errorf("expected canonical factor warning, got log:\n%s", out)
	}
	if !strings.Contains(out, "catalog sealed") {
		t.Errorf("expected seal debug line, got log:\n%s", out)
	}
}

func TestCatalog_Queries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	c := f.catalog

	canonical, err := c.Unit(f.length)
	if err != nil {
		t.Fatal(err)
	}
	if canonical != quantity.UnitProxy(f.meter) {
		t.Errorf("Unit(length) = %v, want meter", canonical)
	}
	if _, err := c.Unit(42); !errors.Is(err, quantity.ErrLookupMiss) {
		t.Errorf("Unit(42) error = %v, want ErrLookupMiss", err)
	}

	s, err := c.Scale(f.temperature, f.fahrDeg)
	if err != nil {
		t.Fatal(err)
	}
	if s != quantity.ScaleProxy(f.fahrenheit) {
		t.Errorf("Scale(temperature, F°) = %v, want Fahrenheit", s)
	}
	if _, err := c.Scale(f.length, f.meter); !errors.Is(err, quantity.ErrLookupMiss) {
		t.Errorf("Scale(length, meter) error = %v, want ErrLookupMiss", err)
	}

	if got := len(c.Units(f.temperature)); got != 3 {
		t.Errorf("len(Units(temperature)) = %d, want 3", got)
	}
	if got := len(c.Scales(f.temperature)); got != 3 {
		t.Errorf("len(Scales(temperature)) = %d, want 3", got)
	}
	if c.Units(99) != nil {
		t.Error("Units(unknown) should be nil")
	}

	fams := c.Families()
	if len(fams) != 3 || fams[0].Name != "length" || fams[2].ID != f.currency {
		t.Errorf("Families() = %v", fams)
	}
	fam, err := c.FamilyByName("temperature")
	if err != nil || fam.ID != f.temperature {
		t.Errorf("FamilyByName(temperature) = %v, %v", fam, err)
	}
	if _, err := c.FamilyByName("luminosity"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("FamilyByName(unknown) error = %v, want ErrUnknownFamily", err)
	}
	if _, err := c.Family(0); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("Family(0) error = %v, want ErrUnknownFamily", err)
	}

	k := c.LookupSymbol("K")
	if len(k) != 2 || k[0] != quantity.Proxy(f.kelvinUnit) || k[1] != quantity.Proxy(f.kelvin) {
		t.Errorf("LookupSymbol(K) = %v", k)
	}
	if got := c.LookupSymbol("€"); len(got) != 1 || got[0] != quantity.Proxy(f.euro) {
		t.Errorf("LookupSymbol(€) = %v", got)
	}
	if got := c.LookupSymbol("furlong"); len(got) != 0 {
		t.Errorf("LookupSymbol(furlong) = %v", got)
	}
}

func TestCatalog_ConcurrentQueries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if _, err := f.catalog.Scale(f.temperature, f.celsiusDeg); err != nil {
					t.Error(err)
					return
				}
				_ = f.catalog.LookupSymbol("km")
			}
		}()
	}
	wg.Wait()
}
