// Package activation analyzes the rise transient of a BVD transducer
// driven at its series resonance, and the voltage-overboost strategy that
// shortens it: drive at a boost amplitude ub first, then switch to the
// continuous-wave amplitude ucw once the current envelope reaches the
// steady-state value ucw/rs.
//
// With the switch placed exactly at the envelope crossing,
//
//	t_sw = -τ·ln(1 - ucw/ub), τ = 2·ls/rs
//
// the residual transient vanishes and the settling time collapses from
// the unboosted -τ·ln(1 - f) (f the settling fraction, 0.982 by default,
// the 4τ point) to t_sw itself. Switching earlier leaves a rising
// residual whose settling time follows in closed form.
package activation
