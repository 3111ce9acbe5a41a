package extrucal

import (
	"fmt"
	"math"
)

// RequiredRPM returns the screw speed at which an extruder delivering unit
// kg/hr per rpm matches a required throughput, rounded to 2 decimals.
//
// The drag-flow model is linear in rpm, so no iteration is needed:
//
//	N = Q_required / Q(N=1)
func RequiredRPM(required, unit float64) (float64, error) {
	if math.IsNaN(unit) || math.IsInf(unit, 0) || unit <= 0 {
		return 0, &DomainError{
			Op:  "required rpm",
			Msg: fmt.Sprintf("throughput per rpm must be positive and finite, got %g", unit),
		}
	}
	if math.IsNaN(required) || required < 0 {
		return 0, &RangeError{Param: "required throughput", Value: required, Bound: 0, Msg: "can't be negative"}
	}
	return Round(required/unit, 2), nil
}

// UnitThroughput returns the throughput (kg/hr at 1 rpm, 2 decimals) of a
// standard screw of the given size whose channel depth is depthPercent of
// the size.
func UnitThroughput(size, depthPercent, meltDensity float64) (float64, error) {
	if err := ValidateDepthPercent(depthPercent); err != nil {
		return 0, err
	}
	return Throughput(StandardScrew(size, size*depthPercent), meltDensity, 1)
}

// ProductRPM is the required screw speed for making p at lineSpeed on a
// standard screw of the given size. The melt density is the solid density
// times densityRatio.
func ProductRPM(p Product, lineSpeed, solidDensity, densityRatio, size, depthPercent float64) (float64, error) {
	if err := ValidateDensityRatio(densityRatio); err != nil {
		return 0, err
	}
	required, err := RequiredThroughput(p, lineSpeed, solidDensity)
	if err != nil {
		return 0, err
	}
	unit, err := UnitThroughput(size, depthPercent, solidDensity*densityRatio)
	if err != nil {
		return 0, err
	}
	return RequiredRPM(required, unit)
}
