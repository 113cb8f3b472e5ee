package response

import (
	"math"

	"github.com/cwbudde/algo-bvd/bvd"
)

// InitialState describes the series-branch state at the step event: the
// instantaneous current and its slope at t = 0.
type InitialState struct {
	Current float64 // i(0) in amperes
	Slope   float64 // i'(0) in amperes per second
}

// Waveform is a crystallized closed-form solution of the free series-loop
// transient, evaluable at any t >= 0. Create one with Ringdown.
type Waveform struct {
	params Params
	regime Regime

	// underdamped: amp·e^(-αt)·cos(ω_d·t + phase)
	amp   float64
	phase float64

	// critically damped: (c1 + c2·t)·e^(-αt)
	// overdamped: c1·e^(s1·t) + c2·e^(s2·t)
	c1, c2 float64
	s1, s2 float64
}

// Ringdown derives the free (undriven) series-loop response for the given
// initial state. All three damping regimes are supported.
func Ringdown(td *bvd.Transducer, ic InitialState) (*Waveform, error) {
	p, err := ParamsFor(td)
	if err != nil {
		return nil, err
	}

	w := &Waveform{params: p, regime: p.Regime()}

	switch w.regime {
	case Underdamped:
		// i(t) = e^(-αt)·(A·cos ω_d t + B·sin ω_d t) with A = i0 and
		// B = (i'0 + α·i0)/ω_d, folded into amplitude/phase form.
		a := ic.Current
		b := (ic.Slope + p.Alpha*ic.Current) / p.OmegaD
		w.amp = math.Hypot(a, b)
		w.phase = -math.Atan2(b, a)

	case CriticallyDamped:
		w.c1 = ic.Current
		w.c2 = ic.Slope + p.Alpha*ic.Current

	case Overdamped:
		spread := p.Omega0 * math.Sqrt(p.Zeta*p.Zeta-1)
		w.s1 = -p.Alpha + spread
		w.s2 = -p.Alpha - spread
		w.c1 = (ic.Slope - w.s2*ic.Current) / (w.s1 - w.s2)
		w.c2 = ic.Current - w.c1
	}

	return w, nil
}

// Params returns the derived response parameters.
func (w *Waveform) Params() Params { return w.params }

// Regime returns the damping regime of the solution.
func (w *Waveform) Regime() Regime { return w.regime }

// At returns the current at time t.
func (w *Waveform) At(t float64) float64 {
	switch w.regime {
	case Underdamped:
		return w.amp * math.Exp(-w.params.Alpha*t) * math.Cos(w.params.OmegaD*t+w.phase)
	case CriticallyDamped:
		return (w.c1 + w.c2*t) * math.Exp(-w.params.Alpha*t)
	default:
		return w.c1*math.Exp(w.s1*t) + w.c2*math.Exp(w.s2*t)
	}
}

// Envelope returns the decay envelope at time t: the amplitude factor
// amp·e^(-αt) in the underdamped regime, and an exponential bound
// |c1·e^(s1·t)| + |c2·e^(s2·t)| (degenerating to |c1 + c2·t|·e^(-αt)) in
// the non-oscillatory regimes.
func (w *Waveform) Envelope(t float64) float64 {
	switch w.regime {
	case Underdamped:
		return w.amp * math.Exp(-w.params.Alpha*t)
	case CriticallyDamped:
		return math.Abs(w.c1+w.c2*t) * math.Exp(-w.params.Alpha*t)
	default:
		return math.Abs(w.c1)*math.Exp(w.s1*t) + math.Abs(w.c2)*math.Exp(w.s2*t)
	}
}

// TimeConstant returns τ = 1/α.
func (w *Waveform) TimeConstant() float64 {
	return w.params.TimeConstant()
}

// SettleTime returns the first time at which the envelope has fallen to
// the given fraction of its initial value. The underdamped result is the
// closed form τ·ln(1/fraction); the non-oscillatory regimes bracket the
// crossing and bisect.
func (w *Waveform) SettleTime(fraction float64) (float64, error) {
	if fraction <= 0 || fraction >= 1 || math.IsNaN(fraction) {
		return 0, ErrInvalidFraction
	}

	if w.regime == Underdamped {
		return -math.Log(fraction) * w.TimeConstant(), nil
	}

	e0 := w.Envelope(0)
	if e0 == 0 {
		return 0, nil
	}

	return crossingBelow(w.Envelope, fraction*e0, w.TimeConstant())
}
