// SPDX-License-Identifier: MPL-2.0

package quantity

import (
	"errors"
	"testing"

	"github.com/invowk/measure/pkg/dimension"
)

const (
	areaFamily FamilyID = iota + 10
	timeFamily
	velocityFamily
	volumeFamily
	frequencyFamily
)

func TestDerivation_Check(t *testing.T) {
	t.Parallel()

	meter := floatUnit(t, "meter", lengthFamily, dimension.LengthSense, 1, "m")
	kilometer := floatUnit(t, "kilometer", lengthFamily, dimension.LengthSense, 0.001, "km")
	second := floatUnit(t, "second", timeFamily, dimension.TimeSense, 1, "s")
	hour := floatUnit(t, "hour", timeFamily, dimension.TimeSense, 1.0/3600, "h")

	squareMeter := floatUnit(t, "square meter", areaFamily, dimension.SquareLength, 1, "m²")
	squareKilometer := floatUnit(t, "square kilometer", areaFamily, dimension.SquareLength, 1e-6, "km²")
	hectare := floatUnit(t, "hectare", areaFamily, dimension.SquareLength, 1e-4, "ha")
	kmPerHour := floatUnit(t, "kilometer per hour", velocityFamily, dimension.Velocity, 3.6, "km/h")
	wrongSense := floatUnit(t, "meter second", velocityFamily, dimension.Sense{dimension.Length: 1, dimension.Time: 1}, 1, "m·s")
	cubicMeter := floatUnit(t, "cubic meter", volumeFamily, dimension.CubicLength, 1, "m³")
	liter := floatUnit(t, "liter", volumeFamily, dimension.CubicLength, 1000, "L")
	hertz := floatUnit(t, "hertz", frequencyFamily, dimension.Frequency, 1, "Hz")
	perHour := floatUnit(t, "per hour", frequencyFamily, dimension.Frequency, 3600, "h⁻¹")

	tests := []struct {
		name    string
		d       Derivation
		wantErr bool
	}{
		{"square meter", Product(squareMeter, meter, meter), false},
		{"square kilometer", Product(squareKilometer, kilometer, kilometer), false},
		{"kilometer per hour", Quotient(kmPerHour, kilometer, hour), false},
		{"hectare is not m·km", Product(hectare, meter, kilometer), true},
		{"velocity is not a product", Quotient(wrongSense, meter, second), true},
		{"cubic meter", Power(cubicMeter, meter, 3), false},
		{"hertz inverts second", Power(hertz, second, -1), false},
		{"per hour inverts hour", Power(perHour, hour, -1), false},
		{"liter is not a cubic meter", Power(liter, meter, 3), true},
		{"square meter is not meter cubed", Power(squareMeter, meter, 3), true},
		{"exponent overflow", Power(cubicMeter, meter, 200), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.d.Check()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Check() returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInconsistentDerivation) {
				t.Fatalf("Check() error = %v, want ErrInconsistentDerivation", err)
			}
			var derr *InconsistentDerivationError
			if !errors.As(err, &derr) || derr.Unit != tt.d.Target().Name() {
				t.Errorf("InconsistentDerivationError = %+v", derr)
			}
		})
	}
}
