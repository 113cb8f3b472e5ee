// Package response derives closed-form transient solutions for the series
// branch of a Butterworth-Van Dyke equivalent circuit.
//
// The second-order engine classifies the series loop by its damping ratio
// and crystallizes the matching closed form into a Waveform evaluable at
// any t >= 0:
//
//	underdamped        A·e^(-αt)·cos(ω_d·t + φ)
//	critically damped  (c1 + c2·t)·e^(-αt)
//	overdamped         c1·e^(s1·t) + c2·e^(s2·t)
//
// with ω₀ = 1/√(ls·cs), α = rs/(2·ls), ζ = α/ω₀ and ω_d = ω₀·√(1-ζ²).
// Amplitude and phase follow from the initial current and its slope. A
// driven pre-state (sinusoidal steady state before a step event) reduces
// to an InitialState sampled at the event; the measure packages build
// those states for the concrete activation and deactivation scenarios.
//
// The third-order model adds the parallel branch. CharacteristicRoots
// returns the roots of
//
//	s³ + a2·s² + a1·s + a0 = 0
//
// where a finite parallel resistance contributes to all three
// coefficients and open-circuit termination (Rp → ∞) gives a0 = 0 with an
// exact zero root. NewModal solves the mode coefficients from the initial
// current and its first two derivatives and evaluates
// i(t) = Σ c_k·e^(λ_k·t) on the real axis.
package response
