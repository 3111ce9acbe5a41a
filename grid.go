package extrucal

import "fmt"

// Axis is one independent variable of a sweep.
type Axis struct {
	Name   string    // Short field name: "depth", "rpm", "speed", "size"
	Title  string    // Human title with unit, for legends and axes
	Label  string    // fmt pattern for table labels, e.g. "rpm=%g"
	Values []float64 // In sweep order
}

// LabelOf formats v with the axis label pattern.
func (a Axis) LabelOf(v float64) string {
	if a.Label == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf(a.Label, v)
}

// Labels returns the formatted label of every axis value.
func (a Axis) Labels() []string {
	out := make([]string, len(a.Values))
	for i, v := range a.Values {
		out[i] = a.LabelOf(v)
	}
	return out
}

// Grid holds one value per (series, x) combination.
//
// Series is the outer variable and X the inner one. In a table X values are
// rows and Series values are columns; in a chart X is the horizontal axis
// and Series is the colour.
type Grid struct {
	Series Axis
	X      Axis
	Value  Axis // Only Name and Title are used

	Cells [][]float64 // Cells[series][x]
}

// Point is one cell of a grid in long form.
type Point struct {
	X      float64
	Series float64
	Value  float64
}

// NewGrid allocates a zeroed grid for the given axes.
func NewGrid(series, x, value Axis) *Grid {
	cells := make([][]float64, len(series.Values))
	for i := range cells {
		cells[i] = make([]float64, len(x.Values))
	}
	return &Grid{Series: series, X: x, Value: value, Cells: cells}
}

// Rows is the number of X values.
func (g *Grid) Rows() int { return len(g.X.Values) }

// Cols is the number of Series values.
func (g *Grid) Cols() int { return len(g.Series.Values) }

// At returns the value in table row (X index) and column (Series index).
func (g *Grid) At(row, col int) float64 { return g.Cells[col][row] }

// Column returns the values of one series, in X order.
func (g *Grid) Column(series float64) ([]float64, bool) {
	for i, v := range g.Series.Values {
		if v == series {
			return g.Cells[i], true
		}
	}
	return nil, false
}

// Long melts the grid into (x, series, value) points, series-major.
func (g *Grid) Long() []Point {
	out := make([]Point, 0, g.Rows()*g.Cols())
	for si, s := range g.Series.Values {
		for xi, x := range g.X.Values {
			out = append(out, Point{X: x, Series: s, Value: g.Cells[si][xi]})
		}
	}
	return out
}
