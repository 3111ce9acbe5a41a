package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexshd/extrucal"
	"github.com/alexshd/extrucal/chart"
	"github.com/alexshd/extrucal/internal/config"
	"github.com/alexshd/extrucal/table"
)

// execute runs one scenario. Scenario format, out and workers override the
// global flags when set.
func (a *app) execute(ctx context.Context, sc config.Scenario) error {
	if sc.Format == "" {
		sc.Format = a.format
	}
	if sc.Out == "" {
		sc.Out = a.out
	}
	cfg := extrucal.SweepConfig{Workers: a.workers, Logger: a.log}
	if sc.Workers > 0 {
		cfg.Workers = sc.Workers
	}

	switch sc.Output {
	case config.OutputValue:
		return a.value(sc)
	case config.OutputTable, config.OutputChart:
		return a.grid(ctx, sc, cfg)
	case config.OutputRecommend:
		return a.recommend(ctx, sc, cfg)
	}
	return fmt.Errorf("unknown output %q", sc.Output)
}

func (a *app) value(sc config.Scenario) error {
	var (
		v    float64
		err  error
		what string
	)
	if sc.Kind == config.KindScrew {
		v, err = config.ThroughputValue(sc.Params)
		what = "throughput"
	} else {
		v, err = config.RequiredThroughputValue(sc.Kind, sc.Params)
		what = "required throughput"
	}
	if err != nil {
		return err
	}
	a.log.Debug("calculated", "kind", sc.Kind, what, v)

	return a.withOutput(sc.Out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%g\n", v)
		return err
	})
}

func (a *app) grid(ctx context.Context, sc config.Scenario, cfg extrucal.SweepConfig) error {
	isChart := sc.Output == config.OutputChart

	var (
		g     *extrucal.Grid
		title string
		err   error
	)
	if sc.Kind == config.KindScrew {
		s, serr := config.ThroughputSweep(sc.Params, isChart)
		if serr != nil {
			return serr
		}
		g, err = s.Run(ctx, cfg)
		title = fmt.Sprintf("Throughput[kg/hr] at %g~%gRPM for channel depths from %g to %gmm",
			s.RPM.Min, s.RPM.Max, s.Depth.Min, s.Depth.Max)
	} else {
		s, serr := config.RPMSweep(sc.Kind, sc.Params, isChart)
		if serr != nil {
			return serr
		}
		g, err = s.Run(ctx, cfg)
		title = fmt.Sprintf("Screw RPM for a %s line at %g~%gmpm on %g~%gmm extruders",
			sc.Kind, s.LineSpeed.Min, s.LineSpeed.Max, s.Size.Min, s.Size.Max)
	}
	if err != nil {
		return err
	}

	if isChart {
		return a.writeChart(sc, g)
	}
	return a.withOutput(sc.Out, func(w io.Writer) error {
		return table.Write(w, g, table.Options{
			Format: tableFormat(sc.Format),
			Title:  title,
			Bold:   sc.Out == "" && isTerminal(a.stdout),
		})
	})
}

func tableFormat(f string) string {
	if f == "" {
		return "text"
	}
	return f
}

// writeChart writes JSON when asked for it, HTML otherwise.
func (a *app) writeChart(sc config.Scenario, g *extrucal.Grid) error {
	var spec chart.Spec
	if sc.Kind == config.KindScrew {
		spec = chart.ThroughputChart(g)
	} else {
		spec = chart.RPMChart(g)
	}

	asJSON := sc.Format == "json" || strings.HasSuffix(sc.Out, ".json")
	return a.withOutput(sc.Out, func(w io.Writer) error {
		if asJSON {
			return chart.WriteJSON(w, spec)
		}
		return chart.WriteHTML(w, spec)
	})
}

func (a *app) recommend(ctx context.Context, sc config.Scenario, cfg extrucal.SweepConfig) error {
	s, err := config.RPMSweep(sc.Kind, sc.Params, false)
	if err != nil {
		return err
	}
	speed, err := sc.Params.Float("l_speed")
	if err != nil {
		return err
	}
	rec, err := extrucal.Recommend(ctx, s, speed, sc.OperatingWindow(), cfg)
	if err != nil {
		return err
	}
	if !rec.Found {
		a.log.Warn("no extruder in the operating window", "reason", rec.Reason)
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, c := range rec.Candidates {
		fmt.Fprintf(tw, "%gmm Ext\t%.2f rpm\t%s\t\n", c.Size, c.RPM, c.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "\n%s\n", rec.Reason)

	return a.withOutput(sc.Out, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
}

// withOutput calls write with stdout, or with the file named by path.
func (a *app) withOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(a.stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Info("output written", "path", path)
	return nil
}
