// Package minimize provides a deterministic bounded scalar minimizer:
// a coarse grid scan locating the best bracket, refined by golden-section
// search with a fixed iteration budget.
package minimize

import (
	"gonum.org/v1/gonum/floats"
)

const (
	phi = 0.6180339887498949 // (sqrt(5)-1)/2

	// DefaultScanPoints is the default coarse grid size.
	DefaultScanPoints = 64

	refineIterations = 80
	boundaryFraction = 0.01
)

// Result holds the outcome of a bounded minimization.
type Result struct {
	X float64 // argument of the best evaluated point
	F float64 // objective value at X

	// BoundaryLimited marks a minimum within 1% of the search range of
	// either bound: the true optimum likely lies at or beyond the bound
	// rather than in the interior.
	BoundaryLimited bool

	Evaluations int
}

// Bounded minimizes fn over [lo, hi]. The caller must ensure lo < hi and
// a finite fn on the interval; scanPoints <= 0 selects the default grid.
//
// The returned point is the best of all evaluated points, so F is never
// above fn at any grid or refinement sample. For non-unimodal objectives
// this is a local-optimum guarantee only.
func Bounded(fn func(float64) float64, lo, hi float64, scanPoints int) Result {
	if scanPoints < 3 {
		scanPoints = DefaultScanPoints
	}

	res := Result{X: lo, F: fn(lo), Evaluations: 1}
	best := func(x, f float64) {
		if f < res.F {
			res.X, res.F = x, f
		}
	}

	// Coarse scan over a uniform grid.
	grid := floats.Span(make([]float64, scanPoints), lo, hi)
	bestIdx := 0

	for i, x := range grid {
		f := fn(x)
		res.Evaluations++

		if f < res.F {
			bestIdx = i
		}
		best(x, f)
	}

	// Refine with golden-section search around the best grid cell.
	a := grid[max(bestIdx-1, 0)]
	b := grid[min(bestIdx+1, scanPoints-1)]

	c := b - phi*(b-a)
	d := a + phi*(b-a)

	for i := 0; i < refineIterations; i++ {
		fc := fn(c)
		fd := fn(d)
		res.Evaluations += 2

		best(c, fc)
		best(d, fd)

		if fc < fd {
			b = d
		} else {
			a = c
		}

		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	margin := boundaryFraction * (hi - lo)
	res.BoundaryLimited = res.X-lo <= margin || hi-res.X <= margin

	return res
}
