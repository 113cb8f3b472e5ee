package waveform

import "math"

// Stats holds single-pass statistics of a sampled transient.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	Peak          float64 // max |x|
	PeakPos       int
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// Calculate computes transient statistics in a single pass.
func Calculate(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	var (
		sum     float64
		sumSq   float64
		peak    float64
		peakPos int
		zc      int
	)

	for i, x := range samples {
		sum += x
		sumSq += x * x

		if a := math.Abs(x); a > peak {
			peak = a
			peakPos = i
		}

		if i > 0 && samples[i-1]*x < 0 {
			zc++
		}
	}

	return Stats{
		Length:        n,
		DC:            sum / float64(n),
		RMS:           math.Sqrt(sumSq / float64(n)),
		Peak:          peak,
		PeakPos:       peakPos,
		Energy:        sumSq,
		ZeroCrossings: zc,
	}
}
