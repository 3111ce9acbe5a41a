package extrucal

import "math"

// shapeFactorHarmonics is the highest odd harmonic summed by ShapeFactor
// (i = 1, 3, ..., 25: 13 terms).
const shapeFactorHarmonics = 25

// ShapeFactor returns the drag-flow shape factor of a rectangular channel of
// width w and depth d.
//
// The exact solution for drag flow between a moving plate and a channel of
// finite aspect ratio is an infinite series over odd harmonics:
//
//	F = 16w/(π³d) · Σ (1/i³)·tanh(iπd/2w),   i = 1, 3, 5, ...
//
// The series is truncated after i = 25. F approaches 1 as w/d grows
// (infinite parallel plates) and drops below 1 as the flights close in.
func ShapeFactor(w, d float64) float64 {
	var sum float64
	for i := 1; i <= shapeFactorHarmonics; i += 2 {
		fi := float64(i)
		sum += (1 / (fi * fi * fi)) * math.Tanh((fi*math.Pi*d)/(2*w))
	}
	return ((16 * w) / (math.Pow(math.Pi, 3) * d)) * sum
}
