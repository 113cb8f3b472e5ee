package deactivation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/internal/minimize"
	"github.com/cwbudde/algo-bvd/response"
)

// Errors returned by the deactivation analyses.
var (
	ErrInvalidBounds = errors.New("deactivation: resistance bounds must satisfy 0 < lo < hi")
	ErrNegativeTime  = errors.New("deactivation: time must be non-negative")
)

// OpenCircuit marks open-circuit termination, i.e. no damping resistor.
var OpenCircuit = response.OpenCircuit

// zeroModeTol is the largest |Re(λ)| treated as the open-circuit zero
// mode when picking the dominant decaying root.
const zeroModeTol = 1e-9

// Tau returns the ringdown decay time constant with a parallel resistance
// rp attached. rp = OpenCircuit yields the series-branch constant
// 2·ls/rs; a finite rp yields -1/Re(λ) of the slowest nonzero mode of
// the characteristic cubic. A mode decaying slower than every resolvable
// rate returns +Inf.
func Tau(td *bvd.Transducer, rp float64) (float64, error) {
	err := td.Validate()
	if err != nil {
		return 0, err
	}

	rs, ls, _, _ := td.Parameters()

	if math.IsInf(rp, 1) {
		return 2 * ls / rs, nil
	}

	roots, err := response.CharacteristicRoots(td, rp)
	if err != nil {
		return 0, err
	}

	dominant := math.Inf(-1)

	for _, r := range roots {
		re := real(r)

		if re > zeroModeTol {
			return 0, fmt.Errorf("%w: root %v", response.ErrUnstableSystem, r)
		}

		if math.Abs(re) <= zeroModeTol {
			continue
		}

		if re > dominant {
			dominant = re
		}
	}

	if math.IsInf(dominant, -1) {
		return math.Inf(1), nil
	}

	return -1 / dominant, nil
}

// TwoTau returns 2·Tau, the time for the ringdown envelope to fall to
// e⁻² ≈ 13.5% of its initial value.
func TwoTau(td *bvd.Transducer, rp float64) (float64, error) {
	tau, err := Tau(td, rp)
	if err != nil {
		return 0, err
	}

	return 2 * tau, nil
}

// Current returns the transient current at time t after deactivation from
// an initial current i0, with a parallel resistance rp attached
// (OpenCircuit for none). The default initial state is a switch-off at a
// current peak: zero slope and i''(0) = -ω_d²·i0; override with
// WithInitialSlope and WithInitialCurvature.
func Current(t, i0 float64, td *bvd.Transducer, rp float64, opts ...Option) (float64, error) {
	if t < 0 || math.IsNaN(t) {
		return 0, fmt.Errorf("%w: t = %g", ErrNegativeTime, t)
	}

	roots, err := response.CharacteristicRoots(td, rp)
	if err != nil {
		return 0, err
	}

	cfg := applyOptions(opts...)

	ic := response.DefaultModalState(roots, i0)
	if cfg.hasSlope {
		ic.Slope = cfg.slope
	}

	if cfg.hasCurvature {
		ic.Curvature = cfg.curvature
	}

	m, err := response.NewModal(roots, ic)
	if err != nil {
		return 0, err
	}

	return m.At(t), nil
}

// Result holds the outcome of a damping resistance optimization.
type Result struct {
	Resistance float64 // optimal parallel resistance in ohms
	Tau        float64 // decay time at Resistance in seconds

	// BoundaryLimited marks an optimum within 1% of the search range of
	// either bound; the interior-minimum guarantee does not apply there.
	BoundaryLimited bool

	Evaluations int
}

// OptimumResistance finds the parallel resistance in [lo, hi] minimizing
// the ringdown decay time. The search is deterministic: a coarse grid
// scan followed by golden-section refinement with a fixed budget. The
// returned τ is the lowest value among all evaluated points (a local
// optimum only when τ(Rp) is not unimodal).
func OptimumResistance(td *bvd.Transducer, lo, hi float64, opts ...Option) (Result, error) {
	err := td.Validate()
	if err != nil {
		return Result{}, err
	}

	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 1) {
		return Result{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, lo, hi)
	}

	cfg := applyOptions(opts...)

	fn := func(rp float64) float64 {
		tau, err := Tau(td, rp)
		if err != nil {
			return math.Inf(1)
		}

		return tau
	}

	res := minimize.Bounded(fn, lo, hi, cfg.scanPoints)

	return Result{
		Resistance:      res.X,
		Tau:             res.F,
		BoundaryLimited: res.BoundaryLimited,
		Evaluations:     res.Evaluations,
	}, nil
}

// Potential compares the damped ringdown against the undamped baseline.
type Potential struct {
	Resistance         float64 // optimal parallel resistance in ohms
	TauWith            float64 // decay time at Resistance in seconds
	TauWithout         float64 // open-circuit baseline 2·ls/rs in seconds
	Improvement        float64 // TauWithout - TauWith in seconds
	ImprovementPercent float64
	BoundaryLimited    bool
}

// EvaluatePotential quantifies how much an optimally chosen damping
// resistor in [lo, hi] shortens the ringdown relative to the undamped
// baseline.
func EvaluatePotential(td *bvd.Transducer, lo, hi float64, opts ...Option) (Potential, error) {
	opt, err := OptimumResistance(td, lo, hi, opts...)
	if err != nil {
		return Potential{}, err
	}

	baseline, err := Tau(td, OpenCircuit)
	if err != nil {
		return Potential{}, err
	}

	return Potential{
		Resistance:         opt.Resistance,
		TauWith:            opt.Tau,
		TauWithout:         baseline,
		Improvement:        baseline - opt.Tau,
		ImprovementPercent: 100 * (baseline - opt.Tau) / baseline,
		BoundaryLimited:    opt.BoundaryLimited,
	}, nil
}

// Sweep evaluates the decay time on a uniform grid of n resistances
// across [lo, hi], for plotting or export.
func Sweep(td *bvd.Transducer, lo, hi float64, n int) (rps, taus []float64, err error) {
	err = td.Validate()
	if err != nil {
		return nil, nil, err
	}

	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 1) || n < 2 {
		return nil, nil, fmt.Errorf("%w: [%g, %g] with %d points", ErrInvalidBounds, lo, hi, n)
	}

	rps = floats.Span(make([]float64, n), lo, hi)
	taus = make([]float64, n)

	for i, rp := range rps {
		taus[i], err = Tau(td, rp)
		if err != nil {
			return nil, nil, err
		}
	}

	return rps, taus, nil
}
