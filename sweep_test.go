package extrucal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRange_Values(t *testing.T) {
	tests := []struct {
		r    Range
		want []float64
	}{
		{Range{1, 10, 1}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Range{20, 100, 20}, []float64{20, 40, 60, 80, 100}},
		{Range{20, 100, 30}, []float64{20, 50, 80}},
		{Range{0.1, 0.5, 0.1}, []float64{0.1, 0.2, 0.3, 0.4, 0.5}},
		{Range{3, 3, 1}, []float64{3}},
		{Range{5, 1, 1}, nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.r.Values()); diff != "" {
			t.Errorf("%+v mismatch (-want +got):\n%s", tt.r, diff)
		}
	}
}

func TestRange_Validate(t *testing.T) {
	if err := (Range{20, 100, 80}).Validate("size"); err != nil {
		t.Errorf("step = max-min rejected: %v", err)
	}

	err := (Range{20, 100, 81}).Validate("size")
	var re *RangeError
	if !errors.As(err, &re) || re.Param != "delta_size" {
		t.Fatalf("want delta_size RangeError, got %v", err)
	}
	if re.Msg != "'delta_size' can not be greater than 'max_size - min_size'" {
		t.Errorf("msg = %q", re.Msg)
	}

	if err := (Range{1, 10, 0}).Validate("rpm"); !errors.Is(err, ErrRange) {
		t.Errorf("zero step: want ErrRange, got %v", err)
	}
}

var cableRPM = [][]float64{
	{150.8, 15.08, 4.5, 1.89, 0.97},
	{301.6, 30.16, 9.0, 3.77, 1.93},
	{452.4, 45.24, 13.5, 5.65, 2.9},
	{603.2, 60.32, 18.01, 7.54, 3.87},
	{754.0, 75.4, 22.51, 9.42, 4.83},
	{904.8, 90.48, 27.01, 11.31, 5.8},
	{1055.6, 105.56, 31.51, 13.19, 6.77},
	{1206.35, 120.63, 36.01, 15.08, 7.73},
	{1357.15, 135.72, 40.51, 16.96, 8.7},
	{1507.95, 150.79, 45.01, 18.85, 9.67},
}

// TestRPMSweep_Cable verifies the default required-rpm table of a 10 mm
// cable with 2 mm insulation.
func TestRPMSweep_Cable(t *testing.T) {
	s := NewRPMSweep(Cable{OuterDiameter: 10, Thickness: 2}, 1000)
	g, err := s.Run(context.Background(), DefaultSweepConfig())
	if err != nil {
		t.Fatal(err)
	}

	if g.Rows() != 5 || g.Cols() != 10 {
		t.Fatalf("grid %d×%d, want 5 rows × 10 columns", g.Rows(), g.Cols())
	}
	if diff := cmp.Diff(cableRPM, g.Cells); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"20mm Ext", "40mm Ext", "60mm Ext", "80mm Ext", "100mm Ext"}, g.X.Labels()); diff != "" {
		t.Errorf("row labels mismatch (-want +got):\n%s", diff)
	}
	if g.Series.LabelOf(3) != "3mpm" {
		t.Errorf("column label = %q, want 3mpm", g.Series.LabelOf(3))
	}

	LogGrid(t, g)
}

// TestRPMSweep_Cardinality verifies the grid shape follows the ranges.
func TestRPMSweep_Cardinality(t *testing.T) {
	base := NewRPMSweep(Rod{Diameter: 5}, 1000)

	finer := base
	finer.Size.Step = 10
	fewer := base
	fewer.LineSpeed.Max = 5

	for _, tc := range []struct {
		name       string
		s          RPMSweep
		rows, cols int
	}{
		{"defaults", base, 5, 10},
		{"delta_size 10", finer, 9, 10},
		{"max_l_speed 5", fewer, 5, 5},
		{"chart", base.ForChart(), 81, 10},
	} {
		g, err := tc.s.Run(context.Background(), SweepConfig{Workers: 4})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if g.Rows() != tc.rows || g.Cols() != tc.cols {
			t.Errorf("%s: %d×%d, want %d×%d", tc.name, g.Rows(), g.Cols(), tc.rows, tc.cols)
		}
		if len(g.Long()) != tc.rows*tc.cols {
			t.Errorf("%s: long form has %d points", tc.name, len(g.Long()))
		}
	}
}

func TestRPMSweep_Validate(t *testing.T) {
	tube := Tube{OuterDiameter: 10, InnerDiameter: 6}
	tests := []struct {
		name  string
		edit  func(*RPMSweep)
		param string
	}{
		{"delta_l_speed 10", func(s *RPMSweep) { s.LineSpeed.Step = 10 }, "delta_l_speed"},
		{"delta_size 81", func(s *RPMSweep) { s.Size.Step = 81 }, "delta_size"},
		{"depth_percent 0.009", func(s *RPMSweep) { s.DepthPercent = 0.009 }, "depth_percent"},
		{"depth_percent 0.31", func(s *RPMSweep) { s.DepthPercent = 0.31 }, "depth_percent"},
		{"density_ratio 1.01", func(s *RPMSweep) { s.DensityRatio = 1.01 }, "density_ratio"},
		{"density_ratio 0.49", func(s *RPMSweep) { s.DensityRatio = 0.49 }, "density_ratio"},
		{"s_density 299", func(s *RPMSweep) { s.SolidDensity = 299 }, "s_density"},
		{"inner > outer", func(s *RPMSweep) { s.Product = Tube{OuterDiameter: 10, InnerDiameter: 12} }, "inner_d"},
		// product is checked before the ranges
		{"order", func(s *RPMSweep) { s.Product = Tube{OuterDiameter: 10, InnerDiameter: 12}; s.Size.Step = 81 }, "inner_d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRPMSweep(tube, 1000)
			tt.edit(&s)

			_, err := s.Run(context.Background(), DefaultSweepConfig())
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("want RangeError, got %v", err)
			}
			if re.Param != tt.param {
				t.Errorf("param = %q, want %q", re.Param, tt.param)
			}
		})
	}
}

func TestThroughputSweep_Defaults(t *testing.T) {
	s := NewThroughputSweep(ScrewConfig{Size: 100}, 800)
	g, err := s.Run(context.Background(), DefaultSweepConfig())
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]float64{2, 3, 4, 5, 6, 7, 8, 9}, g.Series.Values); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	if g.Rows() != 10 || g.X.LabelOf(g.X.Values[0]) != "rpm=5" {
		t.Errorf("rpm rows: %v", g.X.Labels())
	}

	for _, tc := range []struct{ depth, rpm, want float64 }{
		{2, 5, 5.99}, {2, 50, 59.93},
		{5, 10, 29.38}, {9, 10, 51.23}, {9, 50, 256.13},
	} {
		col, _ := g.Column(tc.depth)
		xi := int(tc.rpm/5) - 1
		if col[xi] != tc.want {
			t.Errorf("depth=%g rpm=%g: %v, want %v", tc.depth, tc.rpm, col[xi], tc.want)
		}
	}

	AssertSeriesLinear(t, g, DefaultAssertionConfig())
}

func TestThroughputSweep_Chart(t *testing.T) {
	s := NewThroughputSweep(ScrewConfig{Size: 100}, 800).ForChart()
	g, err := s.Run(context.Background(), DefaultSweepConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 51 {
		t.Errorf("chart rpm rows = %d, want 51 (0..50)", g.Rows())
	}
	col, _ := g.Column(2)
	if col[0] != 0 {
		t.Errorf("throughput at rpm 0 = %v", col[0])
	}
}

func TestThroughputSweep_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*ThroughputSweep)
		param string
	}{
		{"min_depth below 1%", func(s *ThroughputSweep) { s.Depth.Min = 0.5 }, "min_depth"},
		{"max_depth above 30%", func(s *ThroughputSweep) { s.Depth.Max = 31 }, "max_depth"},
		{"delta_depth", func(s *ThroughputSweep) { s.Depth.Step = 8 }, "delta_depth"},
		{"pitch", func(s *ThroughputSweep) { s.Screw.Pitch = ptr(19) }, "pitch"},
		{"n_flight", func(s *ThroughputSweep) { s.Screw.Flights = 3 }, "n_flight"},
		{"density", func(s *ThroughputSweep) { s.Density = 3500 }, "density"},
		{"density before pitch", func(s *ThroughputSweep) { s.Density = 100; s.Screw.Pitch = ptr(19) }, "density"},
		{"NaN density", func(s *ThroughputSweep) { s.Density = math.NaN() }, "density"},
		{"min_rpm", func(s *ThroughputSweep) { s.RPM.Min = -5 }, "min_rpm"},
		{"delta_rpm", func(s *ThroughputSweep) { s.RPM.Step = 46 }, "delta_rpm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewThroughputSweep(ScrewConfig{Size: 100}, 800)
			tt.edit(&s)

			err := s.Validate()
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("want RangeError, got %v", err)
			}
			if re.Param != tt.param {
				t.Errorf("param = %q, want %q", re.Param, tt.param)
			}
		})
	}
}

// TestSweep_ParallelMatchesSequential verifies worker count never changes
// the grid.
func TestSweep_ParallelMatchesSequential(t *testing.T) {
	s := NewRPMSweep(Sheet{Width: 600, Thickness: 2}, 950).ForChart()

	seq, err := s.Run(context.Background(), SweepConfig{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	par, err := s.Run(context.Background(), SweepConfig{Workers: 16})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel grid differs (-seq +par):\n%s", diff)
	}
	t.Logf("✓ %d cells identical with 1 and 16 workers", seq.Rows()*seq.Cols())
}

func TestSweep_FirstErrorCancels(t *testing.T) {
	series := Axis{Name: "a", Values: []float64{1, 2, 3}}
	x := Axis{Name: "b", Values: []float64{1, 2, 3, 4}}
	boom := errors.New("boom")

	var calls atomic.Int32
	_, err := Sweep(context.Background(), series, x, Axis{Name: "v"},
		func(ctx context.Context, s, xv float64) (float64, error) {
			calls.Add(1)
			if s == 1 && xv == 2 {
				return 0, boom
			}
			return s * xv, nil
		}, SweepConfig{Workers: 1})

	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if err.Error() != "a=1, b=2: boom" {
		t.Errorf("error = %q", err.Error())
	}
	if n := calls.Load(); n >= 12 {
		t.Errorf("sweep evaluated all %d cells after a failure", n)
	}
}

func TestSweep_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewRPMSweep(Rod{Diameter: 3}, 1000)
	_, err := s.Run(ctx, DefaultSweepConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestSweep_Empty(t *testing.T) {
	g, err := Sweep(context.Background(), Axis{Name: "a"}, Axis{Name: "b", Values: []float64{1}}, Axis{},
		func(context.Context, float64, float64) (float64, error) { return 0, fmt.Errorf("unreachable") },
		DefaultSweepConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Cols() != 0 || len(g.Long()) != 0 {
		t.Errorf("empty sweep produced cells")
	}
}
