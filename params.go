package extrucal

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/spf13/cast"
)

// Params carries loosely typed parameters from outside the program (YAML
// scenario files, command-line flags) keyed by their original names:
// size, depth, density, rpm, pitch, w_flight, n_flight, outer_d, ...
//
// Getters accept any Go numeric kind and reject everything else with a
// TypeError. Numeric strings are rejected too: "200" is not a size.
type Params map[string]any

// Has reports whether name is present with a non-nil value.
func (p Params) Has(name string) bool {
	v, ok := p[name]
	return ok && v != nil
}

// Float returns a required numeric parameter.
func (p Params) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	return toFloat(name, v)
}

// FloatOr returns a numeric parameter or def when absent.
func (p Params) FloatOr(name string, def float64) (float64, error) {
	if !p.Has(name) {
		return def, nil
	}
	return toFloat(name, p[name])
}

// FloatPtr returns a numeric parameter or nil when absent.
func (p Params) FloatPtr(name string) (*float64, error) {
	if !p.Has(name) {
		return nil, nil
	}
	f, err := toFloat(name, p[name])
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Int returns a required integer parameter.
func (p Params) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	return toInt(name, v)
}

// IntOr returns an integer parameter or def when absent.
func (p Params) IntOr(name string, def int) (int, error) {
	if !p.Has(name) {
		return def, nil
	}
	return toInt(name, p[name])
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isIntegerKind(k reflect.Kind) bool {
	return isNumericKind(k) && k != reflect.Float32 && k != reflect.Float64
}

func toFloat(name string, v any) (float64, error) {
	if !isNumericKind(reflect.TypeOf(v).Kind()) {
		return 0, &TypeError{Param: name, Value: v, Want: "number"}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, &TypeError{Param: name, Value: v, Want: "number"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &RangeError{Param: name, Value: f, Bound: 0, Msg: "must be finite"}
	}
	return f, nil
}

func toInt(name string, v any) (int, error) {
	if !isIntegerKind(reflect.TypeOf(v).Kind()) {
		return 0, &TypeError{Param: name, Value: v, Want: "integer"}
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, &TypeError{Param: name, Value: v, Want: "integer"}
	}
	return i, nil
}
