package config

import (
	"github.com/alexshd/extrucal"
)

// Screw reads size, depth, pitch, w_flight and n_flight. Depth is optional
// when requireDepth is false (it is swept).
func Screw(p extrucal.Params, requireDepth bool) (extrucal.ScrewConfig, error) {
	var c extrucal.ScrewConfig
	var err error

	if c.Size, err = p.Float("size"); err != nil {
		return c, err
	}
	if requireDepth {
		if c.Depth, err = p.Float("depth"); err != nil {
			return c, err
		}
	}
	if c.Pitch, err = p.FloatPtr("pitch"); err != nil {
		return c, err
	}
	if c.FlightWidth, err = p.FloatPtr("w_flight"); err != nil {
		return c, err
	}
	if c.Flights, err = p.IntOr("n_flight", 1); err != nil {
		return c, err
	}
	return c, nil
}

// ThroughputValue computes the throughput of a single operating point from
// size, depth, density, rpm and the optional screw parameters.
func ThroughputValue(p extrucal.Params) (float64, error) {
	c, err := Screw(p, true)
	if err != nil {
		return 0, err
	}
	density, err := p.Float("density")
	if err != nil {
		return 0, err
	}
	rpm, err := p.Float("rpm")
	if err != nil {
		return 0, err
	}
	return extrucal.Throughput(c.Resolve(), density, rpm)
}

// ThroughputSweep builds a depth × rpm sweep. Defaults are those of
// extrucal.NewThroughputSweep, or of its chart variant when chart is set;
// min_depth, max_depth, delta_depth, min_rpm, max_rpm and delta_rpm
// override them.
func ThroughputSweep(p extrucal.Params, chart bool) (extrucal.ThroughputSweep, error) {
	c, err := Screw(p, false)
	if err != nil {
		return extrucal.ThroughputSweep{}, err
	}
	density, err := p.Float("density")
	if err != nil {
		return extrucal.ThroughputSweep{}, err
	}

	s := extrucal.NewThroughputSweep(c, density)
	if chart {
		s = s.ForChart()
	}
	if s.Depth, err = overrideRange(p, "depth", s.Depth); err != nil {
		return s, err
	}
	if s.RPM, err = overrideRange(p, "rpm", s.RPM); err != nil {
		return s, err
	}
	return s, nil
}

// Product decodes a product of the given kind.
func Product(kind string, p extrucal.Params) (extrucal.Product, error) {
	return extrucal.DecodeProduct(extrucal.ProductKind(kind), p)
}

// RequiredThroughputValue computes the throughput a product line consumes
// from the product dimensions, l_speed and s_density.
func RequiredThroughputValue(kind string, p extrucal.Params) (float64, error) {
	prod, err := Product(kind, p)
	if err != nil {
		return 0, err
	}
	speed, err := p.Float("l_speed")
	if err != nil {
		return 0, err
	}
	density, err := p.Float("s_density")
	if err != nil {
		return 0, err
	}
	return extrucal.RequiredThroughput(prod, speed, density)
}

// RPMSweep builds a line speed × extruder size sweep for a product.
// Defaults are those of extrucal.NewRPMSweep, with 1 mm size steps when
// chart is set; density_ratio, depth_percent and the min_, max_ and delta_
// bounds of l_speed and size override them.
func RPMSweep(kind string, p extrucal.Params, chart bool) (extrucal.RPMSweep, error) {
	prod, err := Product(kind, p)
	if err != nil {
		return extrucal.RPMSweep{}, err
	}
	density, err := p.Float("s_density")
	if err != nil {
		return extrucal.RPMSweep{}, err
	}

	s := extrucal.NewRPMSweep(prod, density)
	if chart {
		s = s.ForChart()
	}
	if s.DensityRatio, err = p.FloatOr("density_ratio", s.DensityRatio); err != nil {
		return s, err
	}
	if s.DepthPercent, err = p.FloatOr("depth_percent", s.DepthPercent); err != nil {
		return s, err
	}
	if s.LineSpeed, err = overrideRange(p, "l_speed", s.LineSpeed); err != nil {
		return s, err
	}
	if s.Size, err = overrideRange(p, "size", s.Size); err != nil {
		return s, err
	}
	return s, nil
}

// overrideRange replaces the bounds of r present in p as min_<name>,
// max_<name> and delta_<name>.
func overrideRange(p extrucal.Params, name string, r extrucal.Range) (extrucal.Range, error) {
	var err error
	if r.Min, err = p.FloatOr("min_"+name, r.Min); err != nil {
		return r, err
	}
	if r.Max, err = p.FloatOr("max_"+name, r.Max); err != nil {
		return r, err
	}
	if r.Step, err = p.FloatOr("delta_"+name, r.Step); err != nil {
		return r, err
	}
	return r, nil
}
