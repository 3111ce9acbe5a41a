// Package table renders a sweep grid as a text, CSV, TSV or JSON table.
//
// Rows are the grid's x values and columns its series values, so a
// required-rpm grid reads one extruder size per row and one line speed per
// column.
package table

import (
	"fmt"
	"io"
	"sort"

	"github.com/alexshd/extrucal"
	"golang.org/x/text/language"
)

// Options control rendering. The zero value renders plain text with two
// decimals.
type Options struct {
	Format string       // text (default), csv, tsv, json
	Title  string       // Printed above text tables, stored in JSON
	Bold   bool         // Bold title (ANSI), text only
	Places int          // Decimals in text output; 0 means 2
	Lang   language.Tag // Number grouping in text output; zero means English
}

func (o Options) places() int {
	if o.Places <= 0 {
		return 2
	}
	return o.Places
}

func (o Options) lang() language.Tag {
	if o.Lang == language.Und {
		return language.English
	}
	return o.Lang
}

// WriterFunc renders one grid.
type WriterFunc func(w io.Writer, g *extrucal.Grid, opts Options) error

// writers maps a format name to its renderer. Formats register themselves
// in init blocks of their files.
var writers = map[string]WriterFunc{}

// Register adds or replaces the renderer for format (last wins).
func Register(format string, fn WriterFunc) { writers[format] = fn }

// Formats returns the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write renders g to w in opts.Format.
func Write(w io.Writer, g *extrucal.Grid, opts Options) error {
	format := opts.Format
	if format == "" {
		format = "text"
	}
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown table format %q (known: %v)", format, Formats())
	}
	return fn(w, g, opts)
}
