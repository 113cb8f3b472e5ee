package waveform

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the spectral estimator.
var (
	ErrInvalidSampleRate = errors.New("waveform: sample rate must be positive")
	ErrInvalidLength     = errors.New("waveform: sample count must be a power of two, at least 8")
)

// RingFrequency estimates the ring frequency of a sampled ringdown in Hz:
// Hann window, forward FFT, peak power bin refined by parabolic
// interpolation. The sample count must be a power of two (at least 8) so
// an FFT plan exists for it; the estimate is accurate to a fraction of a
// bin for any reasonably narrow-band ringdown.
func RingFrequency(samples []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	n := len(samples)
	if n < 8 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	// Periodic Hann window.
	windowed := make([]float64, n)
	for i := range windowed {
		windowed[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	vecmath.MulBlockInPlace(windowed, samples)

	in := make([]complex128, n)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("waveform: fft plan: %w", err)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return 0, fmt.Errorf("waveform: fft: %w", err)
	}

	// Power over the interior positive-frequency bins.
	bins := n / 2
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	peak := 1
	for i := 2; i < bins-1; i++ {
		if power[i] > power[peak] {
			peak = i
		}
	}

	// Parabolic refinement around the peak bin.
	delta := 0.0
	if peak > 0 && peak < bins-1 {
		denom := power[peak-1] - 2*power[peak] + power[peak+1]
		if denom != 0 {
			delta = 0.5 * (power[peak-1] - power[peak+1]) / denom
		}
	}

	return (float64(peak) + delta) * sampleRate / float64(n), nil
}
