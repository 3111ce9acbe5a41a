package extrucal

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for the model properties.
type AssertionConfig struct {
	// Largest difference accepted between a rounded result and the exact
	// value it was rounded from (half a unit in the last place).
	RoundingTolerance float64

	// Minimum R² for a series expected to be a straight line
	MinRSquared float64
}

// DefaultAssertionConfig matches 2-decimal rounding.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RoundingTolerance: 0.005,
		MinRSquared:       0.9999,
	}
}

// AssertLinearInRPM verifies that the throughput of s is proportional to
// screw speed.
//
// Mathematical property:
//
//	Q(N=k) = k·Q(N=1), up to the rounding of Q(N=k)
func AssertLinearInRPM(t testing.TB, s Screw, density float64, rpms []float64, cfg AssertionConfig) {
	t.Helper()

	unit := DragFlow(s, density, 1)
	for _, k := range rpms {
		got, err := Throughput(s, density, k)
		if err != nil {
			t.Fatalf("Throughput(rpm=%g): %v", k, err)
		}
		want := k * unit
		if math.Abs(got-want) > cfg.RoundingTolerance+1e-9 {
			t.Errorf("Throughput not linear in rpm: Q(%g) = %.4f, %g·Q(1) = %.4f", k, got, k, want)
		}
	}

	t.Logf("✓ Linear in rpm: Q(1) = %.6f kg/hr for %d speeds", unit, len(rpms))
}

// AssertRoundTrip verifies that the required rpm, run at the unit
// throughput, delivers the required throughput.
//
// Mathematical property:
//
//	|RequiredRPM(Q, q)·q − Q| <= tolerance·q
func AssertRoundTrip(t testing.TB, required, unit float64, cfg AssertionConfig) {
	t.Helper()

	rpm, err := RequiredRPM(required, unit)
	if err != nil {
		t.Fatalf("RequiredRPM(%g, %g): %v", required, unit, err)
	}
	delivered := rpm * unit
	if math.Abs(delivered-required) > cfg.RoundingTolerance*unit+1e-9 {
		t.Errorf("Round trip failed: %g rpm × %g = %.4f kg/hr, want %g", rpm, unit, delivered, required)
	}

	t.Logf("✓ Round trip: %g kg/hr ÷ %g = %g rpm", required, unit, rpm)
}

// AssertSeriesLinear verifies that every series of g is a straight line
// over the x axis (for a throughput grid, every channel depth over rpm).
func AssertSeriesLinear(t testing.TB, g *Grid, cfg AssertionConfig) {
	t.Helper()

	for _, s := range g.Series.Values {
		fit, err := g.FitSeries(s)
		if err != nil {
			t.Fatalf("fit %s: %v", g.Series.LabelOf(s), err)
		}
		if fit.RSquared < cfg.MinRSquared {
			t.Errorf("%s not linear in %s: R² = %.6f (min: %.6f)",
				g.Series.LabelOf(s), g.X.Name, fit.RSquared, cfg.MinRSquared)
		}
	}

	t.Logf("✓ %d series linear in %s (R² >= %.4f)", g.Cols(), g.X.Name, cfg.MinRSquared)
}

// LogGrid writes a summary of g to the test log.
func LogGrid(t testing.TB, g *Grid) {
	t.Helper()

	t.Logf("\n=== %s: %d %s × %d %s ===", g.Value.Title, g.Cols(), g.Series.Name, g.Rows(), g.X.Name)
	t.Logf("  %-14s %10s %10s %10s", g.Series.Name, "mean", "min", "max")
	for _, st := range g.SeriesStats() {
		t.Logf("  %-14s %10.2f %10.2f %10.2f", g.Series.LabelOf(st.Series), st.Mean, st.Min, st.Max)
	}
}
