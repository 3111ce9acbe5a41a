package extrucal

import "context"

// ThroughputSweep tabulates the throughput of one screw over channel depth
// (series) and screw speed (x).
type ThroughputSweep struct {
	Screw   ScrewConfig // Depth is ignored; it is swept
	Density float64     // Melt density, kg/m³
	Depth   Range       // mm
	RPM     Range
}

// NewThroughputSweep returns the table defaults: depth from 2% to 9% of
// the screw size in 1% steps, 5 to 50 rpm in steps of 5.
func NewThroughputSweep(screw ScrewConfig, density float64) ThroughputSweep {
	size := screw.Size
	return ThroughputSweep{
		Screw:   screw,
		Density: density,
		Depth:   Range{Min: size * 0.02, Max: size * 0.09, Step: size * 0.01},
		RPM:     Range{Min: 5, Max: 50, Step: 5},
	}
}

// ForChart switches the rpm axis to the chart resolution: 0 to the current
// maximum in steps of 1.
func (s ThroughputSweep) ForChart() ThroughputSweep {
	s.RPM = Range{Min: 0, Max: s.RPM.Max, Step: 1}
	return s
}

// Validate checks the sweep before any cell is computed, so a bad
// parameter is reported once instead of per cell.
func (s ThroughputSweep) Validate() error {
	shallow := s.resolved(s.Depth.Min)
	if err := shallow.ValidateDepth(); err != nil {
		return rename(err, "min_depth")
	}
	if err := s.resolved(s.Depth.Max).ValidateDepth(); err != nil {
		return rename(err, "max_depth")
	}
	if err := s.Depth.Validate("depth"); err != nil {
		return err
	}
	density := s.Density
	if err := shallow.validate(&density); err != nil {
		return err
	}
	if err := nonNegative("min_rpm", s.RPM.Min); err != nil {
		return err
	}
	return s.RPM.Validate("rpm")
}

func (s ThroughputSweep) resolved(depth float64) Screw {
	c := s.Screw
	c.Depth = depth
	return c.Resolve()
}

// Axes returns the series, x and value axes of the sweep.
func (s ThroughputSweep) Axes() (series, x, value Axis) {
	series = Axis{Name: "depth", Title: "Channel depth [mm]", Label: "depth=%g", Values: s.Depth.Values()}
	x = Axis{Name: "RPM", Title: "Screw RPM", Label: "rpm=%g", Values: s.RPM.Values()}
	value = Axis{Name: "throughput", Title: "Throughput [kg/hr]"}
	return series, x, value
}

// Run validates the sweep and computes the grid.
func (s ThroughputSweep) Run(ctx context.Context, cfg SweepConfig) (*Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	series, x, value := s.Axes()
	return Sweep(ctx, series, x, value, func(_ context.Context, depth, rpm float64) (float64, error) {
		return Throughput(s.resolved(depth), s.Density, rpm)
	}, cfg)
}

// rename replaces the parameter name of a RangeError.
func rename(err error, param string) error {
	if re, ok := err.(*RangeError); ok {
		cp := *re
		cp.Param = param
		return &cp
	}
	return err
}
