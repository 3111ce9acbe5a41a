package extrucal

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParams_Float(t *testing.T) {
	p := Params{
		"int":     200,
		"int64":   int64(7),
		"uint8":   uint8(3),
		"float32": float32(0.5),
		"float":   6.8,
	}
	want := map[string]float64{"int": 200, "int64": 7, "uint8": 3, "float32": 0.5, "float": 6.8}
	for name, w := range want {
		got, err := p.Float(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got != w {
			t.Errorf("%s = %v, want %v", name, got, w)
		}
	}
}

// TestParams_TypeMismatch verifies that non-numbers are rejected instead
// of coerced.
func TestParams_TypeMismatch(t *testing.T) {
	p := Params{"str": "200", "bool": true, "list": []int{1}}
	for _, name := range []string{"str", "bool", "list"} {
		_, err := p.Float(name)
		var te *TypeError
		if !errors.As(err, &te) {
			t.Errorf("%s: want TypeError, got %v", name, err)
			continue
		}
		if te.Param != name || te.Want != "number" {
			t.Errorf("%s: %+v", name, te)
		}
	}

	_, err := Params{"size": "200"}.Float("size")
	if err.Error() != "'size' should be a number, got string (200)" {
		t.Errorf("message = %q", err.Error())
	}
	t.Logf("✓ %v", err)
}

func TestParams_Int(t *testing.T) {
	p := Params{"n_flight": 2, "float": 1.0, "str": "1"}

	if n, err := p.Int("n_flight"); err != nil || n != 2 {
		t.Errorf("Int(n_flight) = %v, %v", n, err)
	}
	for _, name := range []string{"float", "str"} {
		_, err := p.Int(name)
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("%s: want ErrTypeMismatch, got %v", name, err)
		}
	}
	if _, err := p.Int("float"); err.Error() != "'float' should be an integer, got float64 (1)" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestParams_Defaults(t *testing.T) {
	p := Params{"pitch": 300, "empty": nil}

	if v, err := p.FloatOr("depth", 5); err != nil || v != 5 {
		t.Errorf("FloatOr(missing) = %v, %v", v, err)
	}
	if v, err := p.FloatOr("empty", 5); err != nil || v != 5 {
		t.Errorf("FloatOr(nil) = %v, %v", v, err)
	}
	if v, err := p.IntOr("n_flight", 1); err != nil || v != 1 {
		t.Errorf("IntOr(missing) = %v, %v", v, err)
	}

	if v, err := p.FloatPtr("w_flight"); err != nil || v != nil {
		t.Errorf("FloatPtr(missing) = %v, %v", v, err)
	}
	if v, err := p.FloatPtr("pitch"); err != nil || v == nil || *v != 300 {
		t.Errorf("FloatPtr(pitch) = %v, %v", v, err)
	}

	if _, err := p.Float("depth"); err == nil {
		t.Error("missing required parameter accepted")
	}
	if p.Has("empty") || !p.Has("pitch") {
		t.Error("Has should ignore nil values")
	}
	if diff := cmp.Diff([]string{"empty", "pitch"}, p.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestParams_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(-1)} {
		if _, err := (Params{"x": v}).Float("x"); !errors.Is(err, ErrRange) {
			t.Errorf("%v: want ErrRange, got %v", v, err)
		}
	}
}
