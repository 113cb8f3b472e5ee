package waveform

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the sampled-domain utilities.
var (
	ErrLengthMismatch = errors.New("waveform: slice lengths differ")
)

// Times returns n uniformly spaced sample instants from t0 to t1
// inclusive. n < 1 yields nil.
func Times(t0, t1 float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{t0}
	}

	return floats.Span(make([]float64, n), t0, t1)
}

// Sample evaluates a closed-form curve at each instant.
func Sample(fn func(float64) float64, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = fn(t)
	}

	return out
}

// Envelope returns the pointwise magnitude of the analytic pair
// (inPhase, quadrature): the instantaneous envelope of an oscillatory
// transient sampled together with its 90°-shifted copy.
func Envelope(inPhase, quadrature []float64) ([]float64, error) {
	if len(inPhase) != len(quadrature) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(inPhase), len(quadrature))
	}

	out := make([]float64, len(inPhase))
	vecmath.Magnitude(out, inPhase, quadrature)

	return out, nil
}
