package extrucal

import (
	"context"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Product sweep defaults.
const (
	DefaultDensityRatio = 0.85
	DefaultDepthPercent = 0.05
)

// RPMSweep tabulates the screw speed required to make a product over line
// speed (series) and extruder size (x). Every candidate extruder has a
// standard screw whose channel depth is DepthPercent of its size.
type RPMSweep struct {
	Product      Product
	SolidDensity float64 // kg/m³
	DensityRatio float64 // melt / solid
	LineSpeed    Range   // m/min
	Size         Range   // mm
	DepthPercent float64 // channel depth / size
}

// NewRPMSweep returns the table defaults: 1 to 10 m/min in steps of 1 and
// 20 to 100 mm extruders in steps of 20.
func NewRPMSweep(p Product, solidDensity float64) RPMSweep {
	return RPMSweep{
		Product:      p,
		SolidDensity: solidDensity,
		DensityRatio: DefaultDensityRatio,
		LineSpeed:    Range{Min: 1, Max: 10, Step: 1},
		Size:         Range{Min: 20, Max: 100, Step: 20},
		DepthPercent: DefaultDepthPercent,
	}
}

// ForChart samples every millimetre of extruder size.
func (s RPMSweep) ForChart() RPMSweep {
	s.Size.Step = 1
	return s
}

// Validate checks the sweep before any cell is computed.
func (s RPMSweep) Validate() error {
	return s.validate(true)
}

func (s RPMSweep) validate(speedRange bool) error {
	if s.Product == nil {
		return &DomainError{Op: "rpm sweep", Msg: "no product"}
	}
	if err := s.Product.Validate(); err != nil {
		return err
	}
	if err := ValidateSolidDensity("s_density", s.SolidDensity); err != nil {
		return err
	}
	if err := ValidateDensityRatio(s.DensityRatio); err != nil {
		return err
	}
	if speedRange {
		if err := nonNegative("min_l_speed", s.LineSpeed.Min); err != nil {
			return err
		}
		if err := s.LineSpeed.Validate("l_speed"); err != nil {
			return err
		}
	}
	if err := s.Size.Validate("size"); err != nil {
		return err
	}
	return ValidateDepthPercent(s.DepthPercent)
}

// Axes returns the series, x and value axes of the sweep.
func (s RPMSweep) Axes() (series, x, value Axis) {
	series = Axis{Name: "speed", Title: "Line Speed [mpm]", Label: "%gmpm", Values: s.LineSpeed.Values()}
	x = Axis{Name: "size", Title: "Extruder Size", Label: "%gmm Ext", Values: s.Size.Values()}
	value = Axis{Name: "rpm", Title: "Screw RPM"}
	return series, x, value
}

// Run validates the sweep and computes the grid.
func (s RPMSweep) Run(ctx context.Context, cfg SweepConfig) (*Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	series, x, value := s.Axes()
	unit := s.unitThroughputs()
	return Sweep(ctx, series, x, value, func(_ context.Context, speed, size float64) (float64, error) {
		return s.rpm(unit, speed, size)
	}, cfg)
}

// At computes a single cell of the sweep: the required rpm of an extruder
// of the given size at the given line speed.
func (s RPMSweep) At(lineSpeed, size float64) (float64, error) {
	return s.rpm(s.unitThroughputs(), lineSpeed, size)
}

func (s RPMSweep) rpm(unit *unitThroughputs, speed, size float64) (float64, error) {
	required, err := RequiredThroughput(s.Product, speed, s.SolidDensity)
	if err != nil {
		return 0, err
	}
	u, err := unit.get(size)
	if err != nil {
		return 0, err
	}
	return RequiredRPM(required, u)
}

// unitThroughputs memoises UnitThroughput per extruder size for the
// lifetime of one sweep. Every line speed shares the same column of
// extruders, so each size is evaluated once.
type unitThroughputs struct {
	c            *cache.Cache
	depthPercent float64
	meltDensity  float64
}

func (s RPMSweep) unitThroughputs() *unitThroughputs {
	return &unitThroughputs{
		c:            cache.New(cache.NoExpiration, 0),
		depthPercent: s.DepthPercent,
		meltDensity:  s.SolidDensity * s.DensityRatio,
	}
}

func (u *unitThroughputs) get(size float64) (float64, error) {
	key := strconv.FormatFloat(size, 'g', -1, 64)
	if v, ok := u.c.Get(key); ok {
		return v.(float64), nil
	}
	v, err := UnitThroughput(size, u.depthPercent, u.meltDensity)
	if err != nil {
		return 0, err
	}
	u.c.Set(key, v, cache.NoExpiration)
	return v, nil
}
