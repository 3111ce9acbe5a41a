package extrucal

import (
	"context"
	"fmt"
)

// RPMStatus classifies a required screw speed against an operating window.
type RPMStatus string

const (
	RPMBelowWindow RPMStatus = "BELOW_WINDOW" // Extruder oversized: screw would crawl
	RPMInWindow    RPMStatus = "IN_WINDOW"    // Comfortable operating point
	RPMNearLimit   RPMStatus = "NEAR_LIMIT"   // Top 10% of the window: no headroom for speed-up
	RPMOverLimit   RPMStatus = "OVER_LIMIT"   // Extruder too small for the line speed
)

// nearLimitFraction is the top part of the window reported as NEAR_LIMIT.
const nearLimitFraction = 0.1

// OperatingWindow is the screw speed range an extruder is run in.
type OperatingWindow struct {
	MinRPM float64
	MaxRPM float64
}

// DefaultOperatingWindow returns 10 to 100 rpm.
func DefaultOperatingWindow() OperatingWindow {
	return OperatingWindow{MinRPM: 10, MaxRPM: 100}
}

// Validate rejects empty and negative windows.
func (w OperatingWindow) Validate() error {
	if err := nonNegative("min_rpm", w.MinRPM); err != nil {
		return err
	}
	if !(w.MaxRPM > w.MinRPM) {
		return &RangeError{Param: "max_rpm", Value: w.MaxRPM, Bound: w.MinRPM,
			Msg: "'max_rpm' must be greater than 'min_rpm'"}
	}
	return nil
}

// Classify places rpm relative to the window. Both window bounds are
// inside it.
func (w OperatingWindow) Classify(rpm float64) RPMStatus {
	nearLimit := w.MaxRPM - (w.MaxRPM-w.MinRPM)*nearLimitFraction
	switch {
	case rpm < w.MinRPM:
		return RPMBelowWindow
	case rpm > w.MaxRPM:
		return RPMOverLimit
	case rpm > nearLimit:
		return RPMNearLimit
	default:
		return RPMInWindow
	}
}

// distance is how far rpm lies outside the window, 0 inside it.
func (w OperatingWindow) distance(rpm float64) float64 {
	switch {
	case rpm < w.MinRPM:
		return w.MinRPM - rpm
	case rpm > w.MaxRPM:
		return rpm - w.MaxRPM
	}
	return 0
}

// Candidate is one extruder evaluated for a line speed.
type Candidate struct {
	Size   float64 // mm
	RPM    float64
	Status RPMStatus
}

// Recommendation is the outcome of Recommend.
type Recommendation struct {
	LineSpeed  float64
	Window     OperatingWindow
	Candidates []Candidate // In size order
	Best       Candidate
	Found      bool   // Best lies inside the window
	Reason     string // Human-readable explanation
}

// Recommend evaluates every extruder size of the sweep at one line speed
// and picks the smallest extruder that runs inside the window. An
// extruder in the comfortable part of the window wins over a smaller one
// running near its limit.
//
// When no size fits, Found is false and Best is the candidate closest to
// the window.
func Recommend(ctx context.Context, s RPMSweep, lineSpeed float64, w OperatingWindow, cfg SweepConfig) (Recommendation, error) {
	if err := s.validate(false); err != nil {
		return Recommendation{}, err
	}
	if err := nonNegative("l_speed", lineSpeed); err != nil {
		return Recommendation{}, err
	}
	if err := w.Validate(); err != nil {
		return Recommendation{}, err
	}

	series, x, value := s.Axes()
	series.Values = []float64{lineSpeed}
	unit := s.unitThroughputs()
	g, err := Sweep(ctx, series, x, value, func(_ context.Context, speed, size float64) (float64, error) {
		return s.rpm(unit, speed, size)
	}, cfg)
	if err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{LineSpeed: lineSpeed, Window: w}
	for i, size := range g.X.Values {
		rpm := g.Cells[0][i]
		rec.Candidates = append(rec.Candidates, Candidate{Size: size, RPM: rpm, Status: w.Classify(rpm)})
	}
	if len(rec.Candidates) == 0 {
		return rec, &DomainError{Op: "recommend", Msg: "no extruder sizes to evaluate"}
	}

	for _, want := range []RPMStatus{RPMInWindow, RPMNearLimit} {
		for _, c := range rec.Candidates {
			if c.Status == want {
				rec.Best, rec.Found = c, true
				rec.Reason = fmt.Sprintf("%s runs at %g rpm (%s)", x.LabelOf(c.Size), c.RPM, c.Status)
				return rec, nil
			}
		}
	}

	best := rec.Candidates[0]
	for _, c := range rec.Candidates[1:] {
		if w.distance(c.RPM) < w.distance(best.RPM) {
			best = c
		}
	}
	rec.Best = best

	switch best.Status {
	case RPMOverLimit:
		rec.Reason = fmt.Sprintf("no extruder fits: closest is %s at %g rpm, over %g",
			x.LabelOf(best.Size), best.RPM, w.MaxRPM)
	default:
		rec.Reason = fmt.Sprintf("no extruder fits: closest is %s at %g rpm, below %g",
			x.LabelOf(best.Size), best.RPM, w.MinRPM)
	}
	return rec, nil
}
