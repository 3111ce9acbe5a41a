package extrucal

import (
	"fmt"
	"math"
	"sort"
)

// SeriesStatistics summarises one series of a grid.
type SeriesStatistics struct {
	Series float64
	Mean   float64
	Min    float64
	Max    float64
}

// LinearFit is a least-squares line y = Slope·x + Intercept.
type LinearFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Predict evaluates the fitted line at x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// SeriesStats returns the statistics of every series, in series order.
func (g *Grid) SeriesStats() []SeriesStatistics {
	out := make([]SeriesStatistics, len(g.Series.Values))
	for i, s := range g.Series.Values {
		out[i] = columnStats(s, g.Cells[i])
	}
	return out
}

func columnStats(series float64, values []float64) SeriesStatistics {
	st := SeriesStatistics{Series: series}
	if len(values) == 0 {
		return st
	}

	st.Min, st.Max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	st.Mean = sum / float64(len(values))
	return st
}

// SeriesOrder returns the series values sorted by descending mean, the
// order in which a legend lists them. Ties keep sweep order.
func (g *Grid) SeriesOrder() []float64 {
	stats := g.SeriesStats()
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Mean > stats[j].Mean
	})

	out := make([]float64, len(stats))
	for i, st := range stats {
		out[i] = st.Series
	}
	return out
}

// FitLinear fits a line through (xs[i], ys[i]) by ordinary least squares.
//
//	slope     = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²
//	intercept = ȳ − slope·x̄
//	R²        = 1 − SS_res / SS_tot
//
// R² is 1 when every y is equal and the fit is exact.
func FitLinear(xs, ys []float64) (LinearFit, error) {
	if len(xs) != len(ys) {
		return LinearFit{}, fmt.Errorf("fit: %d x values but %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return LinearFit{}, fmt.Errorf("fit: need at least 2 data points, got %d", len(xs))
	}

	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return LinearFit{}, &DomainError{Op: "fit", Msg: "x values have no variance"}
	}

	fit := LinearFit{Slope: sxy / sxx}
	fit.Intercept = meanY - fit.Slope*meanX

	var ssRes, ssTot float64
	for i := range xs {
		r := ys[i] - fit.Predict(xs[i])
		ssRes += r * r
		d := ys[i] - meanY
		ssTot += d * d
	}
	if ssTot == 0 {
		fit.RSquared = 1
		if ssRes > 0 {
			fit.RSquared = 0
		}
	} else {
		fit.RSquared = 1 - ssRes/ssTot
	}
	return fit, nil
}

// FitSeries fits a line through one series of the grid against its x
// values.
func (g *Grid) FitSeries(series float64) (LinearFit, error) {
	col, ok := g.Column(series)
	if !ok {
		return LinearFit{}, fmt.Errorf("fit: no series %s", g.Series.LabelOf(series))
	}
	return FitLinear(g.X.Values, col)
}
