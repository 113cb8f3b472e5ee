// Package deactivation analyzes the open-circuit ringdown of a BVD
// transducer after the drive is removed, optionally damped by a resistor
// in parallel with the static capacitance.
//
// The decay time τ follows from the dominant mode of the characteristic
// cubic: without a damping resistor it is the series-branch constant
// 2·ls/rs, with one it is -1/Re(λ) of the slowest nonzero mode.
// OptimumResistance locates the resistance minimizing τ over a bounded
// range with a coarse scan plus golden-section refinement.
//
// The τ(Rp) curve is typically unimodal with a single interior minimum
// near the underdamped-to-critically-damped crossover, but this is not
// verified: the optimizer guarantees only that the returned τ is the
// lowest among all evaluated points. Results within 1% of the range of
// either bound are flagged boundary-limited.
package deactivation
