package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-bvd/internal/testutil"
)

func TestOpenCircuitRoots(t *testing.T) {
	td := newTransducer(t)

	roots, err := CharacteristicRoots(td, OpenCircuit)
	if err != nil {
		t.Fatalf("CharacteristicRoots failed: %v", err)
	}

	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}

	// The zero root of the open-circuit factorization is exact and sorts
	// first (largest real part).
	if roots[0] != 0 {
		t.Fatalf("zero root = %v, want exactly 0", roots[0])
	}

	// The conjugate pair decays at -rs/(2·ls).
	rs, ls, _, _ := td.Parameters()
	alpha := rs / (2 * ls)
	testutil.RequireNearRel(t, real(roots[1]), -alpha, 1e-9)
	testutil.RequireNearRel(t, real(roots[2]), -alpha, 1e-9)

	if imag(roots[1]) <= 0 || imag(roots[2]) >= 0 {
		t.Fatalf("conjugate pair out of order: %v, %v", roots[1], roots[2])
	}
}

func TestFiniteResistanceRoots(t *testing.T) {
	td := newTransducer(t)
	rp := 1000.0

	roots, err := CharacteristicRoots(td, rp)
	if err != nil {
		t.Fatalf("CharacteristicRoots failed: %v", err)
	}

	rs, ls, cs, c0 := td.Parameters()
	a2 := rs/ls + 1/(rp*c0)
	a1 := rs/(rp*ls*c0) + 1/(ls*cs) + 1/(ls*c0)
	a0 := 1 / (ls * cs * rp * c0)

	// Every eigenvalue satisfies the cubic to working precision.
	for _, r := range roots {
		residual := r*r*r + complex(a2, 0)*r*r + complex(a1, 0)*r + complex(a0, 0)
		scale := cmplx.Abs(r * r * r)
		if cmplx.Abs(residual) > 1e-9*scale {
			t.Fatalf("root %v residual %v exceeds tolerance", r, residual)
		}
	}

	// Vieta: the root sum is -a2.
	sum := roots[0] + roots[1] + roots[2]
	testutil.RequireNearRel(t, real(sum), -a2, 1e-9)
	testutil.RequireNear(t, imag(sum), 0, 1e-9*a2)

	// All modes decay with a damping resistor attached.
	for _, r := range roots {
		if real(r) >= 0 {
			t.Fatalf("root %v is not strictly stable", r)
		}
	}
}

func TestRootsSortedDescending(t *testing.T) {
	td := newTransducer(t)

	for _, rp := range []float64{50, 500, 5000, OpenCircuit} {
		roots, err := CharacteristicRoots(td, rp)
		if err != nil {
			t.Fatalf("CharacteristicRoots(rp=%g) failed: %v", rp, err)
		}

		for i := 1; i < len(roots); i++ {
			a, b := roots[i-1], roots[i]
			if real(a) < real(b) || (real(a) == real(b) && imag(a) < imag(b)) {
				t.Fatalf("rp=%g: roots %v and %v out of order", rp, a, b)
			}
		}
	}
}

func TestCharacteristicRootsInvalidResistance(t *testing.T) {
	td := newTransducer(t)

	for _, rp := range []float64{0, -10, math.NaN()} {
		if _, err := CharacteristicRoots(td, rp); !errors.Is(err, ErrInvalidResistance) {
			t.Fatalf("rp=%g: got error %v, want ErrInvalidResistance", rp, err)
		}
	}
}
