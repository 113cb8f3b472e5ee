// Package bvd models resonant ultrasonic transducers by their
// Butterworth-Van Dyke (BVD) equivalent circuit: a series RLC branch
// (rs, ls, cs) describing the motional behavior near resonance, in
// parallel with the static capacitance c0.
//
// A Transducer is a validated value object carrying the four circuit
// parameters plus optional name and manufacturer labels. The electrical
// parameters are fixed at construction; only the labels may change. The
// series resonance frequency follows from the motional branch:
//
//	f_r = 1 / (2π·√(ls·cs))
//
// Predefined, measured transducers are available through Presets, and
// custom catalogs load from JSON via LoadLibrary:
//
//	td, err := bvd.Presets().Select("SMBLTD45F40H_1")
//	if err != nil {
//		// unknown name, message lists the available entries
//	}
//
// Transient analysis of a Transducer lives in the response package and in
// measure/deactivation and measure/activation.
package bvd
