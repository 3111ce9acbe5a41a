// Package extrucal computes polymer extrusion throughput and the screw
// speed needed to feed a production line.
//
// # Overview
//
// The core is a closed-form drag-flow model of the metering section of a
// single or double flighted screw. From it the package derives how fast an
// extruder has to turn to supply a rod, tube, sheet or cable line running
// at a given speed, and sweeps both over ranges of geometry for what-if
// tables and charts.
//
// # Architecture
//
// The package components:
//
//   - shape.go      - Channel shape factor (truncated Fourier series)
//   - throughput.go - Drag-flow throughput of a screw
//   - product.go    - Product cross-sections and required throughput
//   - rpm.go        - Required screw speed
//   - bands.go      - Physically valid parameter bands
//   - sweep.go      - Parallel parameter sweeps into a Grid
//   - stats.go      - Per-series statistics and linear fits
//   - recommend.go  - Extruder selection against an operating window
//   - params.go     - Loosely typed parameters from files and flags
//   - assertions.go - Test helpers for the model properties
//
// Rendering lives in the table and chart subpackages.
//
// # Quick Start
//
// Throughput of a 200 mm square-pitch screw with a 10 mm channel:
//
//	screw := extrucal.StandardScrew(200, 10)
//	q, err := extrucal.Throughput(screw, 800, 1) // kg/hr at 1 rpm
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(q) // 23.51
//
// Screw speed needed to insulate a 10 mm cable with 2 mm of PE at
// 10 m/min on a 60 mm extruder:
//
//	cable := extrucal.Cable{OuterDiameter: 10, Thickness: 2}
//	rpm, err := extrucal.ProductRPM(cable, 10, 1000, 0.85, 60, 0.05)
//	fmt.Println(rpm) // 45.01
//
// # Drag flow
//
// The channel is unrolled between the barrel and the screw root. With
// pitch t, n flights, flight width e, channel depth H and diameter D:
//
//	φ = atan(t / πD)
//	W = (t/n)·cos φ − e
//	Q = n·ρ·(πND·cos φ)·W·H·F / 2
//
// φ and W are evaluated at the barrel and the root diameter and W is
// averaged. F is the shape factor correcting for the flanks of a
// rectangular channel:
//
//	F = 16W/(π³H) · Σ_{i=1,3,5..25} tanh(iπH/2W) / i³
//
// Pressure flow, leakage flow and non-isothermal effects are ignored.
//
// # Required RPM
//
// Q is linear in the screw speed N, so the required speed is a ratio:
//
//	N = Q_required / Q(N=1)
//
// Q_required is line speed × cross-section × solid density. Q(N=1) uses
// the melt density, the solid density times a density ratio (0.85 by
// default).
//
// # Sweeps
//
// ThroughputSweep tabulates throughput over channel depth and rpm;
// RPMSweep tabulates required rpm over line speed and extruder size. Both
// validate every parameter once, then evaluate the cells on a worker pool:
//
//	sweep := extrucal.NewRPMSweep(cable, 1000)
//	grid, err := sweep.Run(ctx, extrucal.DefaultSweepConfig())
//
// Grid rows are the x values (extruder sizes), columns the series values
// (line speeds).
//
// # Errors
//
// Out-of-band parameters return a *RangeError naming the parameter and the
// crossed bound; non-numeric parameters a *TypeError; a zero throughput
// per rpm a *DomainError. Test with errors.Is against ErrRange,
// ErrTypeMismatch and ErrDomain.
//
// # Testing
//
// Use assertions to validate model properties:
//
//	func TestMyScrew(t *testing.T) {
//	    cfg := extrucal.DefaultAssertionConfig()
//	    extrucal.AssertLinearInRPM(t, screw, 800, []float64{5, 50, 120}, cfg)
//	    extrucal.AssertRoundTrip(t, 301.593, 0.67, cfg)
//	}
package extrucal
