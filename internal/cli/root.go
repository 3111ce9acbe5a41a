// Package cli implements the extrucal command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries the global flags and the process streams to every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger

	logLevel string
	format   string
	workers  int
	out      string
}

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	a.log = newLogger(stderr, slog.LevelInfo)

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error("extrucal failed", "err", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "extrucal",
		Short: "Extrusion throughput and required screw speed",
		Long: `Calculate the drag-flow throughput of an extruder screw and the screw
speed needed to supply rod, tube, sheet and cable lines.

Each calculation prints a single value; the table and chart subcommands
sweep it over a range of geometry.

Examples:
  extrucal screw --size 200 --depth 10 --density 800 --rpm 1
  extrucal screw table --size 200 --density 800
  extrucal cable table --outer-d 10 --thickness 2 --s-density 1000
  extrucal cable chart --outer-d 10 --thickness 2 --s-density 1000 --out cable.html
  extrucal cable recommend --outer-d 10 --thickness 2 --s-density 1000 --l-speed 10
  extrucal run scenario.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.log = newLogger(a.stderr, level)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.format, "format", "", "output format: text, csv, tsv, json (tables); html, json (charts)")
	pf.IntVar(&a.workers, "workers", runtime.GOMAXPROCS(0), "concurrent cell evaluations in sweeps")
	pf.StringVarP(&a.out, "out", "o", "", "write output to this file instead of stdout")

	root.AddCommand(a.screwCommand())
	for _, c := range a.productCommands() {
		root.AddCommand(c)
	}
	root.AddCommand(a.runCommand())
	return root
}

// newLogger returns a tint logger on w, coloured only on terminals.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
