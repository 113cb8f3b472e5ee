package activation

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/internal/minimize"
)

// Errors returned by the activation analyses.
var (
	ErrInvalidDrive    = errors.New("activation: drive amplitudes must be positive and finite")
	ErrBoostNotAboveCW = errors.New("activation: boost amplitude must exceed the continuous-wave amplitude")
	ErrInvalidBounds   = errors.New("activation: boost bounds must satisfy ucw < lo < hi")
	ErrNegativeTime    = errors.New("activation: time must be non-negative")
)

// Drive describes the activation voltage strategy.
type Drive struct {
	UCW float64 // continuous-wave amplitude in volts
	UB  float64 // boost amplitude in volts; zero disables boosting

	// SwitchTime is the boost-to-CW switching instant in seconds. Zero
	// selects the optimal instant -τ·ln(1 - UCW/UB).
	SwitchTime float64
}

// Boosted reports whether the drive uses an overboost phase.
func (d Drive) Boosted() bool { return d.UB != 0 }

// Validate checks the drive amplitudes and switching time.
func (d Drive) Validate() error {
	if !(d.UCW > 0) || math.IsInf(d.UCW, 1) {
		return fmt.Errorf("%w: ucw = %g", ErrInvalidDrive, d.UCW)
	}

	if d.Boosted() {
		if !(d.UB > 0) || math.IsInf(d.UB, 1) {
			return fmt.Errorf("%w: ub = %g", ErrInvalidDrive, d.UB)
		}

		if d.UB <= d.UCW {
			return fmt.Errorf("%w: ub = %g, ucw = %g", ErrBoostNotAboveCW, d.UB, d.UCW)
		}
	} else if d.SwitchTime != 0 {
		return fmt.Errorf("%w: switching time without a boost amplitude", ErrInvalidDrive)
	}

	if d.SwitchTime < 0 || math.IsNaN(d.SwitchTime) || math.IsInf(d.SwitchTime, 1) {
		return fmt.Errorf("%w: switching time = %g", ErrInvalidDrive, d.SwitchTime)
	}

	return nil
}

// switchTime returns the effective switching instant for the drive.
func (d Drive) switchTime(tau float64) float64 {
	if d.SwitchTime != 0 {
		return d.SwitchTime
	}

	return -tau * math.Log(1-d.UCW/d.UB)
}

// Current returns the series-branch current at time t under the given
// drive, with the transducer driven at its series resonance
// ω_r = 1/√(ls·cs). t = +Inf yields the steady-state amplitude ucw/rs.
func Current(t float64, td *bvd.Transducer, d Drive) (float64, error) {
	err := td.Validate()
	if err != nil {
		return 0, err
	}

	err = d.Validate()
	if err != nil {
		return 0, err
	}

	if t < 0 || math.IsNaN(t) {
		return 0, fmt.Errorf("%w: t = %g", ErrNegativeTime, t)
	}

	rs, ls, cs, _ := td.Parameters()
	omegaR := 1 / math.Sqrt(ls*cs)
	tau := 2 * ls / rs

	if math.IsInf(t, 1) {
		return d.UCW / rs, nil
	}

	if !d.Boosted() {
		return (d.UCW / rs) * math.Cos(omegaR*t) * (1 - mathExp(-t/tau)), nil
	}

	tsw := d.switchTime(tau)
	if t < tsw {
		return (d.UB / rs) * math.Cos(omegaR*t) * (1 - mathExp(-t/tau)), nil
	}

	// After the switch the boosted envelope decays toward the CW steady
	// state; both parts share the carrier cos(ω_r·t).
	ampSwitch := (d.UB / rs) * (1 - mathExp(-tsw/tau))
	decay := mathExp(-(t - tsw) / tau)

	return ampSwitch*decay*math.Cos(omegaR*t) + (d.UCW/rs)*math.Cos(omegaR*t)*(1-decay), nil
}

// SwitchingTime returns the optimal boost-to-CW switching instant: the
// time at which the boosted current envelope crosses the steady-state
// amplitude ucw/rs, leaving no residual transient.
func SwitchingTime(td *bvd.Transducer, ucw, ub float64) (float64, error) {
	err := td.Validate()
	if err != nil {
		return 0, err
	}

	d := Drive{UCW: ucw, UB: ub}
	if !d.Boosted() {
		return 0, fmt.Errorf("%w: ub = %g", ErrInvalidDrive, ub)
	}

	err = d.Validate()
	if err != nil {
		return 0, err
	}

	rs, ls, _, _ := td.Parameters()

	return d.switchTime(2 * ls / rs), nil
}

// SettleTime returns the first time the current envelope stays within the
// settling fraction of the steady-state amplitude ucw/rs (default 0.982,
// the 4τ point; see WithSettleFraction).
func SettleTime(td *bvd.Transducer, d Drive, opts ...Option) (float64, error) {
	err := td.Validate()
	if err != nil {
		return 0, err
	}

	err = d.Validate()
	if err != nil {
		return 0, err
	}

	cfg := applyOptions(opts...)
	f := cfg.settleFraction

	rs, ls, _, _ := td.Parameters()
	tau := 2 * ls / rs

	if !d.Boosted() {
		return -tau * math.Log(1-f), nil
	}

	tsw := d.switchTime(tau)
	x := tsw / tau

	// Envelope at the switching instant vs the settling target.
	ampSwitch := (d.UB / rs) * (1 - mathExp(-x))
	if ampSwitch >= f*d.UCW/rs {
		return tsw, nil
	}

	// Residual rise after an early switch, solved for the target level.
	ex := mathExp(x)

	return tau * math.Log((d.UB*ex-d.UB-d.UCW*ex)/(f*d.UCW-d.UCW)), nil
}

// Potential compares the boosted activation against the plain CW drive.
type Potential struct {
	SwitchTime         float64 // optimal switching instant in seconds
	SettleWithBoost    float64
	SettleWithoutBoost float64
	Improvement        float64 // SettleWithoutBoost - SettleWithBoost
	ImprovementPercent float64

	// NoImprovement marks parameter sets where boosting does not settle
	// faster than the plain CW drive.
	NoImprovement bool
}

// EvaluatePotential quantifies how much overboosting at ub shortens the
// activation transient relative to driving at ucw alone.
func EvaluatePotential(td *bvd.Transducer, ucw, ub float64, opts ...Option) (Potential, error) {
	tsw, err := SwitchingTime(td, ucw, ub)
	if err != nil {
		return Potential{}, err
	}

	with, err := SettleTime(td, Drive{UCW: ucw, UB: ub}, opts...)
	if err != nil {
		return Potential{}, err
	}

	without, err := SettleTime(td, Drive{UCW: ucw}, opts...)
	if err != nil {
		return Potential{}, err
	}

	return Potential{
		SwitchTime:         tsw,
		SettleWithBoost:    with,
		SettleWithoutBoost: without,
		Improvement:        without - with,
		ImprovementPercent: 100 * (without - with) / without,
		NoImprovement:      with >= without,
	}, nil
}

// BoostResult holds the outcome of a boost amplitude search.
type BoostResult struct {
	Boost      float64 // boost amplitude in volts
	SwitchTime float64
	SettleTime float64

	// BoundaryLimited marks an optimum within 1% of the search range of
	// either bound. Settling time decreases monotonically with the boost
	// amplitude under optimal switching, so the search routinely pins to
	// the upper bound.
	BoundaryLimited bool

	Evaluations int
}

// OptimumBoost searches [lo, hi] for the boost amplitude minimizing the
// settling time at the given CW amplitude.
func OptimumBoost(td *bvd.Transducer, ucw, lo, hi float64, opts ...Option) (BoostResult, error) {
	err := td.Validate()
	if err != nil {
		return BoostResult{}, err
	}

	if !(ucw > 0) || math.IsInf(ucw, 1) {
		return BoostResult{}, fmt.Errorf("%w: ucw = %g", ErrInvalidDrive, ucw)
	}

	if !(lo > ucw) || !(hi > lo) || math.IsInf(hi, 1) {
		return BoostResult{}, fmt.Errorf("%w: [%g, %g] with ucw = %g", ErrInvalidBounds, lo, hi, ucw)
	}

	cfg := applyOptions(opts...)

	fn := func(ub float64) float64 {
		settle, err := SettleTime(td, Drive{UCW: ucw, UB: ub}, opts...)
		if err != nil {
			return math.Inf(1)
		}

		return settle
	}

	res := minimize.Bounded(fn, lo, hi, cfg.scanPoints)

	tsw, err := SwitchingTime(td, ucw, res.X)
	if err != nil {
		return BoostResult{}, err
	}

	return BoostResult{
		Boost:           res.X,
		SwitchTime:      tsw,
		SettleTime:      res.F,
		BoundaryLimited: res.BoundaryLimited,
		Evaluations:     res.Evaluations,
	}, nil
}
