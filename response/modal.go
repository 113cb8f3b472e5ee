package response

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// unstableTol is the largest positive real part still treated as a
	// numerically zero eigenvalue rather than an unstable mode.
	unstableTol = 1e-12
	// degenerateTol is the relative root spacing below which the modal
	// expansion breaks down (the Vandermonde system becomes singular).
	degenerateTol = 1e-9
)

// ModalState describes the series current and its first two derivatives
// at the step event.
type ModalState struct {
	Current   float64 // i(0) in amperes
	Slope     float64 // i'(0) in amperes per second
	Curvature float64 // i''(0) in amperes per second squared
}

// DefaultModalState returns the state of a switch-off at a current peak:
// i(0) = i0, zero slope, and i''(0) = -ω_d²·i0 with ω_d taken from the
// most oscillatory root.
func DefaultModalState(roots []complex128, i0 float64) ModalState {
	var omegaD float64
	for _, r := range roots {
		if w := math.Abs(imag(r)); w > omegaD {
			omegaD = w
		}
	}

	return ModalState{
		Current:   i0,
		Curvature: -omegaD * omegaD * i0,
	}
}

// ModalWaveform is the transient solution i(t) = Re Σ c_k·e^(λ_k·t) of
// the third-order model, with the mode coefficients fixed by a
// ModalState. Create one with NewModal.
type ModalWaveform struct {
	roots [3]complex128
	coeff [3]complex128
}

// NewModal solves the mode coefficients of the third-order transient from
// the characteristic roots and the initial state. The roots must be
// distinct and stable (no real part above tolerance); the coefficients
// follow from the 3x3 complex Vandermonde system
//
//	Σ c_k = i(0),  Σ λ_k·c_k = i'(0),  Σ λ_k²·c_k = i''(0)
//
// solved in closed form.
func NewModal(roots []complex128, ic ModalState) (*ModalWaveform, error) {
	if len(roots) != 3 {
		return nil, fmt.Errorf("%w: got %d roots, want 3", ErrDegenerateRoots, len(roots))
	}

	scale := 0.0
	for _, r := range roots {
		if a := cmplx.Abs(r); a > scale {
			scale = a
		}

		if real(r) > unstableTol {
			return nil, fmt.Errorf("%w: root %v", ErrUnstableSystem, r)
		}
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if cmplx.Abs(roots[i]-roots[j]) <= degenerateTol*scale {
				return nil, fmt.Errorf("%w: roots %v and %v", ErrDegenerateRoots, roots[i], roots[j])
			}
		}
	}

	w := &ModalWaveform{roots: [3]complex128{roots[0], roots[1], roots[2]}}
	w.solve(complex(ic.Current, 0), complex(ic.Slope, 0), complex(ic.Curvature, 0))

	return w, nil
}

// solve applies Cramer's rule to the Vandermonde system. The determinant
// factors as (λ2-λ1)·(λ3-λ1)·(λ3-λ2), nonzero for distinct roots.
func (w *ModalWaveform) solve(b0, b1, b2 complex128) {
	l1, l2, l3 := w.roots[0], w.roots[1], w.roots[2]
	det := (l2 - l1) * (l3 - l1) * (l3 - l2)

	// Replace one Vandermonde column by the right-hand side at a time.
	w.coeff[0] = vandermondeDet(b0, b1, b2, l2, l3) / det
	w.coeff[1] = -vandermondeDet(b0, b1, b2, l1, l3) / det
	w.coeff[2] = vandermondeDet(b0, b1, b2, l1, l2) / det
}

// vandermondeDet expands the 3x3 determinant with the right-hand side in
// the first column and Vandermonde columns of p and q in the others.
func vandermondeDet(b0, b1, b2, p, q complex128) complex128 {
	return b0*(p*q*q-q*p*p) - b1*(q*q-p*p) + b2*(q-p)
}

// Roots returns the characteristic roots of the expansion.
func (w *ModalWaveform) Roots() []complex128 {
	return []complex128{w.roots[0], w.roots[1], w.roots[2]}
}

// Coefficients returns the complex mode coefficients.
func (w *ModalWaveform) Coefficients() []complex128 {
	return []complex128{w.coeff[0], w.coeff[1], w.coeff[2]}
}

// At returns the current at time t. t = +Inf evaluates to zero, the
// steady state of every stable mode.
func (w *ModalWaveform) At(t float64) float64 {
	if math.IsInf(t, 1) {
		return 0
	}

	var sum complex128
	for k := range w.roots {
		sum += w.coeff[k] * cmplx.Exp(w.roots[k]*complex(t, 0))
	}

	return real(sum)
}

// Envelope returns the decay bound Σ |c_k|·e^(Re λ_k·t) at time t.
func (w *ModalWaveform) Envelope(t float64) float64 {
	var sum float64
	for k := range w.roots {
		sum += cmplx.Abs(w.coeff[k]) * math.Exp(real(w.roots[k])*t)
	}

	return sum
}
