package table

import (
	"encoding/json"
	"io"

	"github.com/alexshd/extrucal"
)

func init() { Register("json", writeJSON) }

type jsonAxis struct {
	Name   string    `json:"name"`
	Title  string    `json:"title"`
	Values []float64 `json:"values,omitempty"`
}

type jsonPoint struct {
	X      float64 `json:"x"`
	Series float64 `json:"series"`
	Value  float64 `json:"value"`
}

type jsonTable struct {
	Title  string      `json:"title,omitempty"`
	Series jsonAxis    `json:"series"`
	X      jsonAxis    `json:"x"`
	Value  jsonAxis    `json:"value"`
	Points []jsonPoint `json:"points"`
}

// writeJSON writes the grid in long form, series-major.
func writeJSON(w io.Writer, g *extrucal.Grid, opts Options) error {
	out := jsonTable{
		Title:  opts.Title,
		Series: jsonAxis{Name: g.Series.Name, Title: g.Series.Title, Values: g.Series.Values},
		X:      jsonAxis{Name: g.X.Name, Title: g.X.Title, Values: g.X.Values},
		Value:  jsonAxis{Name: g.Value.Name, Title: g.Value.Title},
	}
	for _, p := range g.Long() {
		out.Points = append(out.Points, jsonPoint{X: p.X, Series: p.Series, Value: p.Value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
