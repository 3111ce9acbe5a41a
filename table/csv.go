package table

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/alexshd/extrucal"
)

func init() {
	Register("csv", func(w io.Writer, g *extrucal.Grid, _ Options) error { return writeDelimited(w, g, ',') })
	Register("tsv", func(w io.Writer, g *extrucal.Grid, _ Options) error { return writeDelimited(w, g, '\t') })
}

// writeDelimited writes a header of series labels, then one record per x
// value. Numbers are written in full precision without grouping.
func writeDelimited(w io.Writer, g *extrucal.Grid, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	header := append([]string{g.X.Name}, g.Series.Labels()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for row := 0; row < g.Rows(); row++ {
		rec := make([]string, 0, g.Cols()+1)
		rec = append(rec, g.X.LabelOf(g.X.Values[row]))
		for col := 0; col < g.Cols(); col++ {
			rec = append(rec, strconv.FormatFloat(g.At(row, col), 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
