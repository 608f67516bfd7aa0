// SPDX-License-Identifier: MPL-2.0

package dimension

// Named vectors for the base and most commonly derived dimensions.
var (
	Dimensionless = Sense{}

	LengthSense      = Of(Length)
	TimeSense        = Of(Time)
	MassSense        = Of(Mass)
	TemperatureSense = Of(Temperature)
	CurrentSense     = Of(ElectricCurrent)
	AmountSense      = Of(AmountOfSubstance)
	LuminousSense    = Of(LuminousIntensity)
	MonetarySense    = Of(Other)

	SquareLength = must(Multiply(LengthSense, LengthSense))
	CubicLength  = must(Multiply(SquareLength, LengthSense))
	SquareTime   = must(Multiply(TimeSense, TimeSense))
	Frequency    = must(Inverse(TimeSense))
	Velocity     = must(Divide(LengthSense, TimeSense))
	Acceleration = must(Divide(Velocity, TimeSense))
	Momentum     = must(Multiply(MassSense, Velocity))
	Force        = must(Multiply(MassSense, Acceleration))
	Pressure     = must(Divide(Force, SquareLength))

	// Energy and Torque share one vector; they live in distinct families.
	Energy = must(Multiply(Force, LengthSense))
	Torque = must(Multiply(Force, LengthSense))

	Power  = must(Divide(Energy, TimeSense))
	Charge = must(Multiply(CurrentSense, TimeSense))

	// Angle and SolidAngle are dimensionless.
	Angle      = Sense{}
	SolidAngle = Sense{}
)

// must unwraps the derived vectors above, whose exponents stay far inside
// the int8 range.
func must(s Sense, err error) Sense {
	if err != nil {
		panic(err)
	}
	return s
}
