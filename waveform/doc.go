// Package waveform provides sampled-domain utilities for transient
// current curves: uniform time grids, closed-form sampling, quadrature
// envelope extraction, ring frequency estimation from a sampled ringdown,
// and single-pass transient statistics.
//
// The analysis packages work on closed forms; this package exists for
// plotting, export and cross-checking those closed forms against sampled
// data.
package waveform
