// Package config loads YAML scenario files and turns loosely typed
// parameters into extrucal sweeps.
package config

import (
	"fmt"
	"os"

	"github.com/alexshd/extrucal"
	"gopkg.in/yaml.v3"
)

// KindScrew selects the screw throughput calculation. Every other kind is
// a product kind.
const KindScrew = "screw"

// Outputs.
const (
	OutputValue     = "value"
	OutputTable     = "table"
	OutputChart     = "chart"
	OutputRecommend = "recommend"
)

// Scenario is one calculation described in a YAML file:
//
//	kind: cable
//	output: table
//	params:
//	  outer_d: 10
//	  thickness: 2
//	  s_density: 1000
//	  delta_size: 10
//
// Parameter names are those of the command-line flags with '-' replaced by
// '_'. Numbers must be YAML numbers: a quoted "10" is a type error.
type Scenario struct {
	Kind    string          `yaml:"kind"`
	Output  string          `yaml:"output"`
	Format  string          `yaml:"format,omitempty"`
	Out     string          `yaml:"out,omitempty"`
	Workers int             `yaml:"workers,omitempty"`
	Window  *Window         `yaml:"window,omitempty"`
	Params  extrucal.Params `yaml:"params"`
}

// Window is the operating window of a recommend scenario.
type Window struct {
	MinRPM float64 `yaml:"min_rpm"`
	MaxRPM float64 `yaml:"max_rpm"`
}

// OperatingWindow returns the configured window or the default one.
func (s Scenario) OperatingWindow() extrucal.OperatingWindow {
	if s.Window == nil {
		return extrucal.DefaultOperatingWindow()
	}
	return extrucal.OperatingWindow{MinRPM: s.Window.MinRPM, MaxRPM: s.Window.MaxRPM}
}

// Load reads and validates a scenario file.
func Load(path string) (Scenario, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s, err := Parse(d)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(d []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(d, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if s.Output == "" {
		s.Output = OutputValue
	}
	if s.Params == nil {
		s.Params = extrucal.Params{}
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks kind and output. Parameters are checked when the
// scenario is built.
func (s Scenario) Validate() error {
	if !IsKind(s.Kind) {
		return fmt.Errorf("unknown kind %q (known: %v)", s.Kind, Kinds())
	}
	switch s.Output {
	case OutputValue, OutputTable, OutputChart:
	case OutputRecommend:
		if s.Kind == KindScrew {
			return fmt.Errorf("output %q needs a product kind", s.Output)
		}
	default:
		return fmt.Errorf("unknown output %q", s.Output)
	}
	return nil
}

// Kinds returns screw followed by the product kinds.
func Kinds() []string {
	out := []string{KindScrew}
	for _, k := range extrucal.ProductKinds() {
		out = append(out, string(k))
	}
	return out
}

// IsKind reports whether k names a known calculation.
func IsKind(k string) bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}
