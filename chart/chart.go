// Package chart builds Vega-Lite charts from sweep grids.
//
// The grid is melted into long form: one data row per cell with the x,
// series and value fields named after the grid axes. X is the horizontal
// axis, the value the vertical one and the series the colour. The legend
// lists series by descending mean value, so the top legend entry is the
// top curve.
package chart

import (
	"encoding/json"
	"io"

	"github.com/alexshd/extrucal"
)

// SchemaURL is the Vega-Lite version the specs are written for.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Mark types.
const (
	MarkLine   = "line"
	MarkCircle = "circle"
)

// Spec is a single-view Vega-Lite specification. Only the properties the
// charts use are modelled.
type Spec struct {
	Schema   string   `json:"$schema"`
	Title    string   `json:"title,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Data     Data     `json:"data"`
	Mark     Mark     `json:"mark"`
	Encoding Encoding `json:"encoding"`
	Config   Config   `json:"config"`
}

type Data struct {
	Values []map[string]float64 `json:"values"`
}

type Mark struct {
	Type    string `json:"type"`
	Tooltip bool   `json:"tooltip,omitempty"`
}

type Encoding struct {
	X       Channel   `json:"x"`
	Y       Channel   `json:"y"`
	Color   Channel   `json:"color"`
	Tooltip []Channel `json:"tooltip,omitempty"`
}

// Channel is one encoding channel.
type Channel struct {
	Field string    `json:"field"`
	Type  string    `json:"type"`
	Title string    `json:"title,omitempty"`
	Scale *Scale    `json:"scale,omitempty"`
	Sort  []float64 `json:"sort,omitempty"`
}

type Scale struct {
	Domain []float64 `json:"domain,omitempty"`
}

type Config struct {
	Axis   FontConfig `json:"axis"`
	Legend FontConfig `json:"legend"`
	Title  TitleFont  `json:"title"`
}

type FontConfig struct {
	LabelFontSize int `json:"labelFontSize"`
	TitleFontSize int `json:"titleFontSize"`
}

type TitleFont struct {
	FontSize int `json:"fontSize"`
}

// Options control FromGrid.
type Options struct {
	Title   string
	Mark    string     // MarkLine (default) or MarkCircle
	XDomain [2]float64 // Zero value lets Vega-Lite choose
	Width   int
	Height  int
}

// DefaultConfig is the font configuration of every chart.
func DefaultConfig() Config {
	return Config{
		Axis:   FontConfig{LabelFontSize: 14, TitleFontSize: 16},
		Legend: FontConfig{LabelFontSize: 16, TitleFontSize: 14},
		Title:  TitleFont{FontSize: 18},
	}
}

// FromGrid builds the chart of g.
func FromGrid(g *extrucal.Grid, opts Options) Spec {
	mark := opts.Mark
	if mark == "" {
		mark = MarkLine
	}

	x := Channel{Field: g.X.Name, Type: "quantitative", Title: g.X.Title}
	if opts.XDomain != [2]float64{} {
		x.Scale = &Scale{Domain: opts.XDomain[:]}
	}
	y := Channel{Field: g.Value.Name, Type: "quantitative", Title: g.Value.Title}
	color := Channel{Field: g.Series.Name, Type: "nominal", Title: g.Series.Title, Sort: g.SeriesOrder()}

	values := make([]map[string]float64, 0, g.Rows()*g.Cols())
	for _, p := range g.Long() {
		values = append(values, map[string]float64{
			g.X.Name:      p.X,
			g.Series.Name: p.Series,
			g.Value.Name:  p.Value,
		})
	}

	return Spec{
		Schema: SchemaURL,
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Data:   Data{Values: values},
		Mark:   Mark{Type: mark},
		Encoding: Encoding{
			X:     x,
			Y:     y,
			Color: color,
			Tooltip: []Channel{
				{Field: g.X.Name, Type: "quantitative"},
				{Field: g.Series.Name, Type: "nominal"},
				{Field: g.Value.Name, Type: "quantitative"},
			},
		},
		Config: DefaultConfig(),
	}
}

// ThroughputChart plots throughput over rpm, one colour per channel depth.
func ThroughputChart(g *extrucal.Grid) Spec {
	return FromGrid(g, Options{
		Title:   "Throughput vs Screw RPM & Channel Depth",
		Mark:    MarkCircle,
		XDomain: [2]float64{0, last(g.X.Values)},
	})
}

// RPMChart plots required rpm over extruder size, one line per line speed.
func RPMChart(g *extrucal.Grid) Spec {
	return FromGrid(g, Options{
		Title:   "Screw RPM vs Extruder Size & Line Speed",
		Mark:    MarkLine,
		XDomain: [2]float64{first(g.X.Values), last(g.X.Values)},
	})
}

func first(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

func last(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[len(v)-1]
}

// WriteJSON writes the indented Vega-Lite JSON of s.
func WriteJSON(w io.Writer, s Spec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
