package testutil

import "math"

// Ringdown samples the decaying cosine i0·e^(-t/tau)·cos(omega·t) at the
// given sample rate.
func Ringdown(i0, tau, omega, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = i0 * math.Exp(-t/tau) * math.Cos(omega*t)
	}
	return out
}

// RingdownQuadrature samples the quadrature component matching Ringdown,
// i0·e^(-t/tau)·sin(omega·t).
func RingdownQuadrature(i0, tau, omega, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = i0 * math.Exp(-t/tau) * math.Sin(omega*t)
	}
	return out
}

// DriveRise samples the rising drive waveform amp·(1-e^(-t/tau))·cos(omega·t).
func DriveRise(amp, tau, omega, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = amp * (1 - math.Exp(-t/tau)) * math.Cos(omega*t)
	}
	return out
}
