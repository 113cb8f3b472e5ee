//go:build fastmath

package activation

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using a fast approximation. Sampling the drive
// waveform spends most of its time here.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
