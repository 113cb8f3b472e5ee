package response

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-bvd/bvd"
)

// Errors returned by the response engine.
var (
	ErrInvalidResistance = errors.New("response: parallel resistance must be positive")
	ErrInvalidFraction   = errors.New("response: settle fraction must be in (0, 1)")
	ErrUnstableSystem    = errors.New("response: eigenvalue with positive real part")
	ErrDegenerateRoots   = errors.New("response: repeated characteristic roots")
	ErrNoConvergence     = errors.New("response: numeric search did not converge")
)

// OpenCircuit marks open-circuit termination (Rp → ∞) in functions taking
// a parallel resistance.
var OpenCircuit = math.Inf(1)

// CharacteristicRoots returns the three roots of the characteristic cubic
//
//	s³ + a2·s² + a1·s + a0 = 0
//
// of the third-order damped model, sorted by descending (real, imaginary)
// part. A finite positive rp is an explicit parallel damping resistor; rp
// = OpenCircuit is open-circuit termination, whose cubic factors as
// s·(s² + a2·s + a1) so the zero root is exact.
func CharacteristicRoots(td *bvd.Transducer, rp float64) ([]complex128, error) {
	err := td.Validate()
	if err != nil {
		return nil, err
	}

	rs, ls, cs, c0 := td.Parameters()

	if math.IsInf(rp, 1) {
		a2 := rs / ls
		a1 := 1/(ls*cs) + 1/(ls*c0)
		r1, r2 := quadraticRoots(a2, a1)

		return sortRoots([]complex128{0, r1, r2}), nil
	}

	if rp <= 0 || math.IsNaN(rp) {
		return nil, fmt.Errorf("%w: rp = %g", ErrInvalidResistance, rp)
	}

	a2 := rs/ls + 1/(rp*c0)
	a1 := rs/(rp*ls*c0) + 1/(ls*cs) + 1/(ls*c0)
	a0 := 1 / (ls * cs * rp * c0)

	roots, err := cubicRoots(a2, a1, a0)
	if err != nil {
		return nil, err
	}

	return sortRoots(roots), nil
}

// quadraticRoots solves s² + b·s + c = 0.
func quadraticRoots(b, c float64) (complex128, complex128) {
	disc := b*b - 4*c
	if disc >= 0 {
		sq := math.Sqrt(disc)
		return complex((-b+sq)/2, 0), complex((-b-sq)/2, 0)
	}

	sq := math.Sqrt(-disc)

	return complex(-b/2, sq/2), complex(-b/2, -sq/2)
}

// cubicRoots solves s³ + a2·s² + a1·s + a0 = 0 through the eigenvalues of
// the companion matrix.
func cubicRoots(a2, a1, a0 float64) ([]complex128, error) {
	companion := mat.NewDense(3, 3, []float64{
		-a2, -a1, -a0,
		1, 0, 0,
		0, 1, 0,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigenvalue decomposition", ErrNoConvergence)
	}

	return eig.Values(nil), nil
}

// sortRoots orders roots by descending (real, imaginary) part in place.
func sortRoots(roots []complex128) []complex128 {
	sort.Slice(roots, func(i, j int) bool {
		if real(roots[i]) != real(roots[j]) {
			return real(roots[i]) > real(roots[j])
		}
		return imag(roots[i]) > imag(roots[j])
	})

	return roots
}
