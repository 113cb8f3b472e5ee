package response

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bvd/internal/testutil"
)

func TestNewModalReproducesInitialState(t *testing.T) {
	td := newTransducer(t)

	for _, rp := range []float64{100, 1000, OpenCircuit} {
		roots, err := CharacteristicRoots(td, rp)
		if err != nil {
			t.Fatalf("CharacteristicRoots(rp=%g) failed: %v", rp, err)
		}

		ic := DefaultModalState(roots, 0.5)

		m, err := NewModal(roots, ic)
		if err != nil {
			t.Fatalf("NewModal(rp=%g) failed: %v", rp, err)
		}

		// i(0) = i0 to 1e-9 relative.
		testutil.RequireNearRel(t, m.At(0), ic.Current, 1e-9)

		// Central difference reproduces the zero initial slope. The scale
		// of the residual is i0·ω_d·(ω_d·h)²/6 plus rounding.
		const h = 1e-9
		slope := (m.At(h) - m.At(-h)) / (2 * h)
		testutil.RequireNear(t, slope, 0, 1e-3*math.Abs(ic.Current)/3.15e-3)
	}
}

func TestDefaultModalStateCurvature(t *testing.T) {
	td := newTransducer(t)

	roots, err := CharacteristicRoots(td, OpenCircuit)
	if err != nil {
		t.Fatalf("CharacteristicRoots failed: %v", err)
	}

	ic := DefaultModalState(roots, 2)

	var omegaD float64
	for _, r := range roots {
		if w := math.Abs(imag(r)); w > omegaD {
			omegaD = w
		}
	}

	if ic.Current != 2 || ic.Slope != 0 {
		t.Fatalf("unexpected state %+v", ic)
	}
	testutil.RequireNearRel(t, ic.Curvature, -omegaD*omegaD*2, 1e-12)
}

func TestModalDecaysToZero(t *testing.T) {
	td := newTransducer(t)

	roots, err := CharacteristicRoots(td, 1000)
	if err != nil {
		t.Fatalf("CharacteristicRoots failed: %v", err)
	}

	m, err := NewModal(roots, DefaultModalState(roots, 1))
	if err != nil {
		t.Fatalf("NewModal failed: %v", err)
	}

	rs, ls, _, _ := td.Parameters()
	tau := 2 * ls / rs

	if got := math.Abs(m.At(30 * tau)); got > 1e-9 {
		t.Fatalf("|i(30τ)| = %g, want ~0", got)
	}

	if got := m.At(math.Inf(1)); got != 0 {
		t.Fatalf("i(∞) = %g, want 0", got)
	}

	if e0, e1 := m.Envelope(0), m.Envelope(tau); e1 >= e0 {
		t.Fatalf("envelope not decaying: %g >= %g", e1, e0)
	}
}

func TestNewModalRejectsUnstableRoots(t *testing.T) {
	roots := []complex128{complex(100, 0), complex(-200, 1e4), complex(-200, -1e4)}

	if _, err := NewModal(roots, ModalState{Current: 1}); !errors.Is(err, ErrUnstableSystem) {
		t.Fatalf("got error %v, want ErrUnstableSystem", err)
	}
}

func TestNewModalRejectsDegenerateRoots(t *testing.T) {
	roots := []complex128{complex(-100, 0), complex(-100, 0), complex(-200, 0)}

	if _, err := NewModal(roots, ModalState{Current: 1}); !errors.Is(err, ErrDegenerateRoots) {
		t.Fatalf("got error %v, want ErrDegenerateRoots", err)
	}

	if _, err := NewModal(roots[:2], ModalState{Current: 1}); !errors.Is(err, ErrDegenerateRoots) {
		t.Fatalf("two roots: got error %v, want ErrDegenerateRoots", err)
	}
}
