package extrucal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"
)

// Range is an inclusive sweep over [Min, Max] in fixed steps.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// rangePlaces is the precision of generated sweep values. Values are
// rounded so that 0.1 + 0.2 style drift never reaches a label or a cell.
const rangePlaces = 2

// Validate checks the range; name is the parameter stem used in messages
// ("depth" → min_depth, max_depth, delta_depth).
func (r Range) Validate(name string) error {
	if !(r.Step > 0) {
		return &RangeError{Param: "delta_" + name, Value: r.Step, Bound: 0, Msg: "step must be positive"}
	}
	if r.Step > r.Max-r.Min {
		return &RangeError{
			Param: "delta_" + name,
			Value: r.Step,
			Bound: r.Max - r.Min,
			Msg:   fmt.Sprintf("'delta_%s' can not be greater than 'max_%s - min_%s'", name, name, name),
		}
	}
	return nil
}

// Values returns Min, Min+Step, ... up to and including Max.
func (r Range) Values() []float64 {
	if !(r.Step > 0) || r.Max < r.Min {
		return nil
	}
	n := int(math.Floor((r.Max-r.Min)/r.Step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = Round(r.Min+float64(i)*r.Step, rangePlaces)
	}
	return out
}

// Len is the number of values Values returns.
func (r Range) Len() int { return len(r.Values()) }

// CellFunc computes one grid cell.
// Implementations must be safe for concurrent use.
type CellFunc func(ctx context.Context, series, x float64) (float64, error)

// SweepConfig controls sweep execution.
type SweepConfig struct {
	Workers int          // Concurrent cell evaluations (<= 1 = sequential)
	Logger  *slog.Logger // Debug output; nil disables logging
}

// DefaultSweepConfig evaluates cells on every available CPU.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Workers: runtime.GOMAXPROCS(0),
	}
}

func (c SweepConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Sweep evaluates cell at every (series, x) combination and returns the
// grid. Cells are independent: they may run in parallel, but the grid order
// is always Series-major. The first failing cell cancels the remaining ones
// and its error is returned.
func Sweep(ctx context.Context, series, x, value Axis, cell CellFunc, cfg SweepConfig) (*Grid, error) {
	g := NewGrid(series, x, value)
	total := g.Rows() * g.Cols()
	log := cfg.logger()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	start := time.Now()
	log.Debug("sweep started",
		"series", series.Name, "x", x.Name, "value", value.Name,
		"cells", total, "workers", workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		jobs     = make(chan int)
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				si, xi := idx/g.Rows(), idx%g.Rows()
				s, xv := series.Values[si], x.Values[xi]

				v, err := cell(ctx, s, xv)
				if err != nil {
					fail(fmt.Errorf("%s=%g, %s=%g: %w", series.Name, s, x.Name, xv, err))
					continue
				}
				g.Cells[si][xi] = v
			}
		}()
	}

feed:
	for idx := 0; idx < total; idx++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("sweep finished", "cells", total, "elapsed", time.Since(start))
	return g, nil
}
