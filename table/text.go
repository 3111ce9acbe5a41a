package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexshd/extrucal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

func init() { Register("text", writeText) }

// writeText prints an aligned table with locale-grouped numbers:
//
//	            1mpm    2mpm
//	20mm Ext  150.80  301.60
//	40mm Ext   15.08   30.16
func writeText(w io.Writer, g *extrucal.Grid, opts Options) error {
	if opts.Title != "" {
		title := opts.Title
		if opts.Bold {
			title = ansiBold + title + ansiReset
		}
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}

	p := message.NewPrinter(opts.lang())
	places := opts.places()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := append([]string{""}, g.Series.Labels()...)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}

	for row := 0; row < g.Rows(); row++ {
		cells := make([]string, 0, g.Cols()+1)
		cells = append(cells, g.X.LabelOf(g.X.Values[row]))
		for col := 0; col < g.Cols(); col++ {
			v := g.At(row, col)
			cells = append(cells, p.Sprint(number.Decimal(v,
				number.MinFractionDigits(places), number.MaxFractionDigits(places))))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
