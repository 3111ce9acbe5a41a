package extrucal

import (
	"math"
	"strconv"
)

// Screw is the metering-section geometry of a single extruder screw.
// All lengths are in millimetres.
type Screw struct {
	Size        float64 // Outer screw diameter
	Depth       float64 // Channel depth of the metering section
	Pitch       float64 // Axial distance between flights
	FlightWidth float64 // Flight land width
	Flights     int     // 1 (single-flighted) or 2 (double-flighted)
}

// ScrewConfig is the caller-facing form of Screw. Nil Pitch means square
// pitch (pitch = size); nil FlightWidth means 10% of size; zero Flights
// means a single flight.
type ScrewConfig struct {
	Size        float64
	Depth       float64
	Pitch       *float64
	FlightWidth *float64
	Flights     int
}

// DefaultFlightWidthRatio is the flight width, as a fraction of screw size,
// used when none is given.
const DefaultFlightWidthRatio = 0.1

// Resolve substitutes the defaults and returns the concrete geometry.
func (c ScrewConfig) Resolve() Screw {
	s := Screw{
		Size:        c.Size,
		Depth:       c.Depth,
		Pitch:       c.Size,
		FlightWidth: c.Size * DefaultFlightWidthRatio,
		Flights:     c.Flights,
	}
	if c.Pitch != nil {
		s.Pitch = *c.Pitch
	}
	if c.FlightWidth != nil {
		s.FlightWidth = *c.FlightWidth
	}
	if s.Flights == 0 {
		s.Flights = 1
	}
	return s
}

// StandardScrew returns a square-pitch, single-flighted screw with the
// default flight width.
func StandardScrew(size, depth float64) Screw {
	return ScrewConfig{Size: size, Depth: depth}.Resolve()
}

// Validate checks the geometry against the relative and absolute bands.
// Checks run in a fixed order and the first violation is returned.
func (s Screw) Validate() error { return s.validate(nil) }

// validate checks the geometry and, when density is given, the melt
// density right after the size: depth, size, density, pitch, flight width,
// flights.
func (s Screw) validate(density *float64) error {
	if err := finite("size", s.Size); err != nil {
		return err
	}
	if err := s.ValidateDepth(); err != nil {
		return err
	}
	if err := check("size", s.Size, ScrewSizeBand,
		"Screw size is too small", "Screw size is too big"); err != nil {
		return err
	}
	if density != nil {
		if err := ValidateMeltDensity("density", *density); err != nil {
			return err
		}
	}
	if err := check("pitch", s.Pitch, PitchRatioBand.Scale(s.Size),
		"Screw pitch is too small", "Screw pitch is too big"); err != nil {
		return err
	}
	if err := check("w_flight", s.FlightWidth, FlightWidthRatioBand.Scale(s.Size),
		"Flight width is too small", "Flight width is too big"); err != nil {
		return err
	}
	if s.Flights != 1 && s.Flights != 2 {
		return &RangeError{
			Param: "n_flight",
			Value: float64(s.Flights),
			Bound: float64(FlightCounts[len(FlightCounts)-1]),
			Msg:   "You chose wrong value for n_flight. It should be either 1 or 2",
		}
	}
	return nil
}

// ValidateDepth checks only the channel depth against the screw size.
func (s Screw) ValidateDepth() error {
	return check("depth", s.Depth, DepthRatioBand.Scale(s.Size),
		"Channel depth is too shallow(<1% of screw size) to be used for extrusion screw",
		"Channel depth is too deep(>30% of screw size) to be used for extrusion screw")
}

// DragFlow returns the unrounded drag-flow mass throughput in kg/hr.
// It does not validate its inputs.
//
// The channel is unrolled between the barrel and the screw root; the helix
// angle and the channel width are evaluated at both diameters and averaged:
//
//	φ   = atan(pitch / πD)
//	W   = (pitch/n)·cos φ − e
//	v_b = π·N·D·cos φ_b
//	Q   = n·ρ·v_b·W·H·F / 2
//
// The result is exactly proportional to rpm.
func DragFlow(s Screw, density, rpm float64) float64 {
	rootSize := s.Size - (s.Depth * 2)
	helixBarrel := math.Atan(s.Pitch / (math.Pi * s.Size))
	helixRoot := math.Atan(s.Pitch / (math.Pi * rootSize))

	n := float64(s.Flights)
	widthBarrel := ((s.Pitch / n) * math.Cos(helixBarrel)) - s.FlightWidth
	widthRoot := ((s.Pitch / n) * math.Cos(helixRoot)) - s.FlightWidth
	width := (widthBarrel + widthRoot) / 2

	shape := ShapeFactor(width, s.Depth)

	revsPerSec := rpm / 60
	barrelSpeed := (math.Pi * revsPerSec * s.Size * math.Cos(helixBarrel)) / 1000 // m/s

	perSec := (n * density * barrelSpeed * (width / 1000) * (s.Depth / 1000) * shape) / 2
	return perSec * 60 * 60
}

// Throughput validates the operating point and returns the drag-flow
// throughput in kg/hr, rounded to 2 decimals.
func Throughput(s Screw, density, rpm float64) (float64, error) {
	if err := s.validate(&density); err != nil {
		return 0, err
	}
	if err := nonNegative("rpm", rpm); err != nil {
		return 0, err
	}
	return Round(DragFlow(s, density, rpm), 2), nil
}

// Round rounds x to the given number of decimal places. Ties are resolved
// on the exact binary value, half to even, so that results agree digit for
// digit with decimal rounding of the same double.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	return r
}
