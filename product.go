package extrucal

import (
	"fmt"
	"math"
	"sort"
)

// ProductKind names a product family.
type ProductKind string

const (
	KindRod   ProductKind = "rod"
	KindTube  ProductKind = "tube"
	KindSheet ProductKind = "sheet"
	KindCable ProductKind = "cable"
)

// Product is the cross-section of an extruded product. It is independent of
// the screw that makes it.
type Product interface {
	Kind() ProductKind
	// Area is the polymer cross-section in mm².
	Area() float64
	Validate() error
}

// Rod is a solid round profile, extruded through one or more die holes.
type Rod struct {
	Diameter float64
	Holes    int // 0 means 1
}

func (r Rod) Kind() ProductKind { return KindRod }

func (r Rod) holes() int {
	if r.Holes == 0 {
		return 1
	}
	return r.Holes
}

func (r Rod) Area() float64 {
	radius := r.Diameter / 2
	return math.Pi * (radius * radius) * float64(r.holes())
}

func (r Rod) Validate() error {
	if err := positive("rod_dia", r.Diameter); err != nil {
		return err
	}
	if r.Holes < 0 {
		return &RangeError{Param: "no_holes", Value: float64(r.Holes), Bound: 1, Msg: "number of die holes must be at least 1"}
	}
	return nil
}

// Tube is a hollow round profile.
type Tube struct {
	OuterDiameter float64
	InnerDiameter float64
}

func (t Tube) Kind() ProductKind { return KindTube }

func (t Tube) Area() float64 {
	ro, ri := t.OuterDiameter/2, t.InnerDiameter/2
	return math.Pi * ((ro * ro) - (ri * ri))
}

func (t Tube) Validate() error {
	if err := positive("outer_d", t.OuterDiameter); err != nil {
		return err
	}
	if err := nonNegative("inner_d", t.InnerDiameter); err != nil {
		return err
	}
	if t.InnerDiameter > t.OuterDiameter {
		return &RangeError{Param: "inner_d", Value: t.InnerDiameter, Bound: t.OuterDiameter,
			Msg: "Inner diameter can't be greater than outer diameter"}
	}
	return nil
}

// Sheet is a flat rectangular profile.
type Sheet struct {
	Width     float64
	Thickness float64
}

func (s Sheet) Kind() ProductKind { return KindSheet }

func (s Sheet) Area() float64 { return s.Width * s.Thickness }

func (s Sheet) Validate() error {
	if err := positive("width", s.Width); err != nil {
		return err
	}
	return positive("thickness", s.Thickness)
}

// Cable is an insulation layer of the given thickness around a conductor;
// OuterDiameter is the finished cable diameter.
type Cable struct {
	OuterDiameter float64
	Thickness     float64
}

func (c Cable) Kind() ProductKind { return KindCable }

func (c Cable) Area() float64 {
	innerD := c.OuterDiameter - (2 * c.Thickness)
	ro, ri := c.OuterDiameter/2, innerD/2
	return math.Pi * ((ro * ro) - (ri * ri))
}

func (c Cable) Validate() error {
	if err := positive("outer_d", c.OuterDiameter); err != nil {
		return err
	}
	if err := nonNegative("thickness", c.Thickness); err != nil {
		return err
	}
	if c.Thickness > c.OuterDiameter/2 {
		return &RangeError{Param: "thickness", Value: c.Thickness, Bound: c.OuterDiameter / 2,
			Msg: "Thickness can't be greater than radius"}
	}
	return nil
}

// RequiredThroughput returns the mass throughput (kg/hr, 3 decimals) a line
// running at lineSpeed (m/min) consumes to make p from a polymer of the
// given solid density.
func RequiredThroughput(p Product, lineSpeed, solidDensity float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := nonNegative("l_speed", lineSpeed); err != nil {
		return 0, err
	}
	if err := ValidateSolidDensity("s_density", solidDensity); err != nil {
		return 0, err
	}
	area := p.Area() / 1000000 // m²
	return Round(lineSpeed*area*60*solidDensity, 3), nil
}

// productDecoders maps each kind to a constructor reading the original
// parameter names from a Params map.
var productDecoders = map[ProductKind]func(Params) (Product, error){
	KindRod: func(p Params) (Product, error) {
		d, err := p.Float("rod_dia")
		if err != nil {
			return nil, err
		}
		holes, err := p.IntOr("no_holes", 1)
		if err != nil {
			return nil, err
		}
		return Rod{Diameter: d, Holes: holes}, nil
	},
	KindTube: func(p Params) (Product, error) {
		outer, err := p.Float("outer_d")
		if err != nil {
			return nil, err
		}
		inner, err := p.Float("inner_d")
		if err != nil {
			return nil, err
		}
		return Tube{OuterDiameter: outer, InnerDiameter: inner}, nil
	},
	KindSheet: func(p Params) (Product, error) {
		w, err := p.Float("width")
		if err != nil {
			return nil, err
		}
		t, err := p.Float("thickness")
		if err != nil {
			return nil, err
		}
		return Sheet{Width: w, Thickness: t}, nil
	},
	KindCable: func(p Params) (Product, error) {
		outer, err := p.Float("outer_d")
		if err != nil {
			return nil, err
		}
		t, err := p.Float("thickness")
		if err != nil {
			return nil, err
		}
		return Cable{OuterDiameter: outer, Thickness: t}, nil
	},
}

// DecodeProduct builds and validates a product of the given kind.
func DecodeProduct(kind ProductKind, params Params) (Product, error) {
	dec, ok := productDecoders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown product kind %q (known: %v)", kind, ProductKinds())
	}
	p, err := dec(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return p, nil
}

// ProductKinds returns the registered kinds in name order.
func ProductKinds() []ProductKind {
	kinds := make([]ProductKind, 0, len(productDecoders))
	for k := range productDecoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
