package response

import (
	"fmt"
	"math"
)

const (
	crossingIterations = 200
	bracketDoublings   = 64
)

// CrossingTime returns the time in [lo, hi] at which fn, assumed
// monotonically decreasing over the interval, reaches the target value.
// The interval must bracket the crossing: fn(lo) >= target >= fn(hi).
func CrossingTime(fn func(float64) float64, target, lo, hi float64) (float64, error) {
	if math.IsNaN(target) || lo >= hi {
		return 0, fmt.Errorf("%w: invalid bracket [%g, %g]", ErrNoConvergence, lo, hi)
	}

	if fn(lo) < target || fn(hi) > target {
		return 0, fmt.Errorf("%w: target %g not bracketed by [%g, %g]", ErrNoConvergence, target, lo, hi)
	}

	for i := 0; i < crossingIterations; i++ {
		mid := 0.5 * (lo + hi)
		if fn(mid) >= target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi), nil
}

// crossingBelow locates the time after which the envelope fn stays below
// target. It assumes fn eventually decreases monotonically; the bracket
// grows by doubling from the given step until fn drops below target.
func crossingBelow(fn func(float64) float64, target, step float64) (float64, error) {
	if fn(0) < target {
		return 0, nil
	}

	lo := 0.0
	hi := step

	for i := 0; fn(hi) >= target; i++ {
		if i >= bracketDoublings {
			return 0, fmt.Errorf("%w: envelope never fell below %g", ErrNoConvergence, target)
		}
		lo = hi
		hi *= 2
	}

	return CrossingTime(fn, target, lo, hi)
}
