package response

import (
	"math"

	"github.com/cwbudde/algo-bvd/bvd"
)

// criticalTol is the relative band around ζ = 1 classified as critical
// damping.
const criticalTol = 1e-9

// Regime identifies the damping regime of a second-order response.
type Regime int

const (
	Underdamped Regime = iota
	CriticallyDamped
	Overdamped
)

// String returns a human-readable regime name.
func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	}
	return "unknown"
}

// Params holds the derived response parameters of the series branch.
type Params struct {
	Omega0 float64 // resonant angular frequency 1/√(ls·cs) in rad/s
	Alpha  float64 // damping factor rs/(2·ls) in 1/s
	Zeta   float64 // damping ratio α/ω₀
	OmegaD float64 // damped angular frequency ω₀·√(1-ζ²), zero unless underdamped
}

// ParamsFor derives the series-branch response parameters of a transducer.
func ParamsFor(td *bvd.Transducer) (Params, error) {
	err := td.Validate()
	if err != nil {
		return Params{}, err
	}

	rs, ls, cs, _ := td.Parameters()

	p := Params{
		Omega0: 1 / math.Sqrt(ls*cs),
		Alpha:  rs / (2 * ls),
	}
	p.Zeta = p.Alpha / p.Omega0

	if p.Regime() == Underdamped {
		p.OmegaD = p.Omega0 * math.Sqrt(1-p.Zeta*p.Zeta)
	}

	return p, nil
}

// Regime classifies the damping regime from the damping ratio.
func (p Params) Regime() Regime {
	switch {
	case math.Abs(p.Zeta-1) <= criticalTol:
		return CriticallyDamped
	case p.Zeta < 1:
		return Underdamped
	default:
		return Overdamped
	}
}

// TimeConstant returns the decay time constant τ = 1/α = 2·ls/rs.
func (p Params) TimeConstant() float64 {
	return 1 / p.Alpha
}
