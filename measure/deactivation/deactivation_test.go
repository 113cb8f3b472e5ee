package deactivation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/internal/testutil"
)

func newTransducer(t *testing.T) *bvd.Transducer {
	t.Helper()

	td, err := bvd.New(24.764, 38.959e-3, 400.33e-12, 3970.1e-12)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return td
}

func TestTauOpenCircuit(t *testing.T) {
	td := newTransducer(t)

	tau, err := Tau(td, OpenCircuit)
	if err != nil {
		t.Fatalf("Tau failed: %v", err)
	}

	rs, ls, _, _ := td.Parameters()
	if tau != 2*ls/rs {
		t.Fatalf("open-circuit tau = %g, want exactly 2·ls/rs = %g", tau, 2*ls/rs)
	}

	two, err := TwoTau(td, OpenCircuit)
	if err != nil {
		t.Fatalf("TwoTau failed: %v", err)
	}

	if two != 2*tau {
		t.Fatalf("TwoTau = %g, want %g", two, 2*tau)
	}
}

func TestTauApproachesBaselineForLargeRp(t *testing.T) {
	td := newTransducer(t)

	baseline, err := Tau(td, OpenCircuit)
	if err != nil {
		t.Fatalf("Tau failed: %v", err)
	}

	prev := 0.0
	for _, rp := range []float64{1e4, 5e4, 2e5, 5e5} {
		tau, err := Tau(td, rp)
		if err != nil {
			t.Fatalf("Tau(rp=%g) failed: %v", rp, err)
		}

		if tau <= prev {
			t.Fatalf("tau(%g) = %g not increasing toward the baseline", rp, tau)
		}

		if tau >= baseline {
			t.Fatalf("tau(%g) = %g exceeds the open-circuit baseline %g", rp, tau, baseline)
		}

		prev = tau
	}

	// Close to the baseline once the resistor barely loads the circuit.
	if prev < 0.85*baseline {
		t.Fatalf("tau(5e5) = %g too far from baseline %g", prev, baseline)
	}
}

func TestTauInvalidResistance(t *testing.T) {
	td := newTransducer(t)

	for _, rp := range []float64{0, -50, math.NaN()} {
		if _, err := Tau(td, rp); err == nil {
			t.Fatalf("Tau(rp=%g) must fail", rp)
		}
	}
}

func TestCurrentInitialValue(t *testing.T) {
	td := newTransducer(t)

	for _, rp := range []float64{100, 1000, OpenCircuit} {
		i, err := Current(0, 0.5, td, rp)
		if err != nil {
			t.Fatalf("Current(rp=%g) failed: %v", rp, err)
		}

		testutil.RequireNearRel(t, i, 0.5, 1e-9)
	}
}

func TestCurrentDecays(t *testing.T) {
	td := newTransducer(t)

	tau, err := Tau(td, OpenCircuit)
	if err != nil {
		t.Fatalf("Tau failed: %v", err)
	}

	late, err := Current(20*tau, 1, td, OpenCircuit)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	// The oscillatory modes are gone after 20τ; what remains is the tiny
	// constant of the open-circuit zero mode, of order ζ²·i0.
	if math.Abs(late) > 1e-4 {
		t.Fatalf("|i(20τ)| = %g, want ~0", late)
	}

	inf, err := Current(math.Inf(1), 1, td, OpenCircuit)
	if err != nil {
		t.Fatalf("Current(∞) failed: %v", err)
	}

	if inf != 0 {
		t.Fatalf("i(∞) = %g, want 0", inf)
	}
}

func TestCurrentNegativeTime(t *testing.T) {
	td := newTransducer(t)

	if _, err := Current(-1e-6, 1, td, OpenCircuit); !errors.Is(err, ErrNegativeTime) {
		t.Fatalf("got error %v, want ErrNegativeTime", err)
	}
}

func TestCurrentInitialSlopeOption(t *testing.T) {
	td := newTransducer(t)

	// Forward difference; h small enough that the curvature term
	// ω_d²·i0·h stays below the tolerance.
	const h = 1e-11
	slope := 1e3

	a, err := Current(0, 0.5, td, OpenCircuit, WithInitialSlope(slope))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	b, err := Current(2*h, 0.5, td, OpenCircuit, WithInitialSlope(slope))
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	testutil.RequireNear(t, (b-a)/(2*h), slope, 1e-2*slope)
}

func TestOptimumResistanceInterior(t *testing.T) {
	td := newTransducer(t)

	res, err := OptimumResistance(td, 10, 5000)
	if err != nil {
		t.Fatalf("OptimumResistance failed: %v", err)
	}

	if res.Resistance <= 10 || res.Resistance >= 5000 {
		t.Fatalf("optimum %g Ω not inside (10, 5000)", res.Resistance)
	}

	if res.BoundaryLimited {
		t.Fatal("interior optimum flagged boundary-limited")
	}

	tauLo, err := Tau(td, 10)
	if err != nil {
		t.Fatalf("Tau(10) failed: %v", err)
	}

	tauHi, err := Tau(td, 5000)
	if err != nil {
		t.Fatalf("Tau(5000) failed: %v", err)
	}

	if res.Tau >= tauLo || res.Tau >= tauHi {
		t.Fatalf("tau(opt) = %g not below tau at the bounds (%g, %g)", res.Tau, tauLo, tauHi)
	}
}

func TestOptimumResistanceIdempotent(t *testing.T) {
	td := newTransducer(t)

	a, err := OptimumResistance(td, 10, 5000)
	if err != nil {
		t.Fatalf("OptimumResistance failed: %v", err)
	}

	b, err := OptimumResistance(td, 10, 5000)
	if err != nil {
		t.Fatalf("OptimumResistance failed: %v", err)
	}

	if a != b {
		t.Fatalf("repeated optimizations differ: %+v vs %+v", a, b)
	}
}

func TestOptimumResistanceInvalidBounds(t *testing.T) {
	td := newTransducer(t)

	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"zero lower", 0, 100},
		{"negative lower", -10, 100},
		{"empty interval", 100, 100},
		{"inverted interval", 200, 100},
		{"infinite upper", 10, math.Inf(1)},
		{"nan lower", math.NaN(), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := OptimumResistance(td, tc.lo, tc.hi); !errors.Is(err, ErrInvalidBounds) {
				t.Fatalf("got error %v, want ErrInvalidBounds", err)
			}
		})
	}
}

func TestEvaluatePotential(t *testing.T) {
	td := newTransducer(t)

	pot, err := EvaluatePotential(td, 10, 5000)
	if err != nil {
		t.Fatalf("EvaluatePotential failed: %v", err)
	}

	rs, ls, _, _ := td.Parameters()
	testutil.RequireNearRel(t, pot.TauWithout, 2*ls/rs, 1e-12)

	if pot.TauWith >= pot.TauWithout {
		t.Fatalf("damping gave no improvement: %g >= %g", pot.TauWith, pot.TauWithout)
	}

	testutil.RequireNearRel(t, pot.Improvement, pot.TauWithout-pot.TauWith, 1e-12)
	testutil.RequireNearRel(t, pot.ImprovementPercent, 100*pot.Improvement/pot.TauWithout, 1e-12)
}

func TestSweep(t *testing.T) {
	td := newTransducer(t)

	rps, taus, err := Sweep(td, 100, 2000, 20)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(rps) != 20 || len(taus) != 20 {
		t.Fatalf("got %d/%d points, want 20", len(rps), len(taus))
	}

	if rps[0] != 100 || rps[19] != 2000 {
		t.Fatalf("grid endpoints %g, %g", rps[0], rps[19])
	}

	want, err := Tau(td, rps[0])
	if err != nil {
		t.Fatalf("Tau failed: %v", err)
	}

	if taus[0] != want {
		t.Fatalf("taus[0] = %g, want %g", taus[0], want)
	}

	testutil.RequireFinite(t, taus)

	if _, _, err := Sweep(td, 100, 2000, 1); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("single-point sweep: got error %v, want ErrInvalidBounds", err)
	}
}
