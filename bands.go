package extrucal

import "math"

// Band is an inclusive interval of physically or mechanically valid values.
// Values exactly on Min or Max are accepted.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Scale returns the band multiplied by f. Geometry bands are expressed as
// fractions of the screw size and scaled before use.
func (b Band) Scale(f float64) Band {
	return Band{Min: b.Min * f, Max: b.Max * f}
}

// Absolute bands.
var (
	// ScrewSizeBand is the range of outer screw diameters (mm) the model
	// is calibrated for.
	ScrewSizeBand = Band{Min: 5, Max: 500}

	// DensityBand covers polymer melt and solid densities (kg/m³).
	// Anything outside is not a polymer.
	DensityBand = Band{Min: 300, Max: 3000}

	// DensityRatioBand bounds melt density / solid density.
	// The melt can't be denser than the solid, and less than half is not
	// a realistic melt.
	DensityRatioBand = Band{Min: 0.5, Max: 1.0}
)

// Bands relative to screw size.
var (
	DepthRatioBand       = Band{Min: 0.01, Max: 0.30}
	PitchRatioBand       = Band{Min: 0.20, Max: 2.50}
	FlightWidthRatioBand = Band{Min: 0.01, Max: 0.70}
)

// FlightCounts lists the supported number of flights.
var FlightCounts = []int{1, 2}

// finite rejects NaN and ±Inf, which compare false against every bound.
func finite(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &RangeError{Param: param, Value: v, Bound: 0, Msg: "must be a finite number"}
	}
	return nil
}

// check returns a RangeError naming the crossed bound, or nil.
func check(param string, v float64, b Band, lowMsg, highMsg string) error {
	if err := finite(param, v); err != nil {
		return err
	}
	if v > b.Max {
		return &RangeError{Param: param, Value: v, Bound: b.Max, Msg: highMsg}
	}
	if !b.Contains(v) {
		return &RangeError{Param: param, Value: v, Bound: b.Min, Msg: lowMsg}
	}
	return nil
}

// positive rejects zero, negative and non-finite dimensions.
func positive(param string, v float64) error {
	if err := finite(param, v); err != nil {
		return err
	}
	if !(v > 0) {
		return &RangeError{Param: param, Value: v, Bound: 0, Msg: "must be positive"}
	}
	return nil
}

// nonNegative rejects negative and non-finite values.
func nonNegative(param string, v float64) error {
	if err := finite(param, v); err != nil {
		return err
	}
	if !(v >= 0) {
		return &RangeError{Param: param, Value: v, Bound: 0, Msg: "can't be negative"}
	}
	return nil
}

// ValidateMeltDensity checks a melt density against DensityBand.
func ValidateMeltDensity(param string, density float64) error {
	return check(param, density, DensityBand,
		"This is not melt density for polymers. Too low",
		"This is not melt density for polymers. Too high")
}

// ValidateSolidDensity checks a solid density against DensityBand.
func ValidateSolidDensity(param string, density float64) error {
	return check(param, density, DensityBand,
		"This is not solid density for polymers. Too low",
		"This is not solid density for polymers. Too high")
}

// ValidateDensityRatio checks melt/solid density ratio.
func ValidateDensityRatio(ratio float64) error {
	return check("density_ratio", ratio, DensityRatioBand,
		"Melt density is too low (<50% of solid density)",
		"Melt density can't be greater than solid density")
}

// ValidateDepthPercent checks the channel depth fraction used by product
// sweeps, where depth is derived from extruder size.
func ValidateDepthPercent(p float64) error {
	return check("depth_percent", p, DepthRatioBand,
		"Channel depth is too shallow(<1% of screw size) to be used for extrusion screw",
		"Channel depth is too deep(>30% of screw size) to be used for extrusion screw")
}
