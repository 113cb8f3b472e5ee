package bvd

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by transducer construction and validation.
var (
	ErrNilTransducer        = errors.New("bvd: nil transducer")
	ErrNonPositiveParameter = errors.New("bvd: circuit parameter must be positive and finite")
)

// Transducer describes a resonant transducer by the four parameters of its
// Butterworth-Van Dyke equivalent circuit. The electrical parameters are
// immutable after construction; the name and manufacturer labels are not.
type Transducer struct {
	rs float64 // series resistance in ohms
	ls float64 // series inductance in henries
	cs float64 // series capacitance in farads
	c0 float64 // parallel (static) capacitance in farads

	name         string
	manufacturer string
}

// New creates a Transducer from series resistance rs (ohms), series
// inductance ls (henries), series capacitance cs (farads) and parallel
// capacitance c0 (farads). All four must be strictly positive and finite.
func New(rs, ls, cs, c0 float64) (*Transducer, error) {
	td := &Transducer{rs: rs, ls: ls, cs: cs, c0: c0}

	err := td.Validate()
	if err != nil {
		return nil, err
	}

	return td, nil
}

// Validate checks that all four circuit parameters are strictly positive
// and finite.
func (t *Transducer) Validate() error {
	if t == nil {
		return ErrNilTransducer
	}

	params := [...]struct {
		name  string
		value float64
	}{
		{"rs", t.rs},
		{"ls", t.ls},
		{"cs", t.cs},
		{"c0", t.c0},
	}

	for _, p := range params {
		if p.value <= 0 || math.IsNaN(p.value) || math.IsInf(p.value, 1) {
			return fmt.Errorf("%w: %s = %g", ErrNonPositiveParameter, p.name, p.value)
		}
	}

	return nil
}

// SetName sets the display name label and returns the receiver for chaining.
func (t *Transducer) SetName(name string) *Transducer {
	t.name = name
	return t
}

// SetManufacturer sets the manufacturer label and returns the receiver for
// chaining.
func (t *Transducer) SetManufacturer(manufacturer string) *Transducer {
	t.manufacturer = manufacturer
	return t
}

// Rs returns the series resistance in ohms.
func (t *Transducer) Rs() float64 { return t.rs }

// Ls returns the series inductance in henries.
func (t *Transducer) Ls() float64 { return t.ls }

// Cs returns the series capacitance in farads.
func (t *Transducer) Cs() float64 { return t.cs }

// C0 returns the parallel (static) capacitance in farads.
func (t *Transducer) C0() float64 { return t.c0 }

// Name returns the display name label, empty when unset.
func (t *Transducer) Name() string { return t.name }

// Manufacturer returns the manufacturer label, empty when unset.
func (t *Transducer) Manufacturer() string { return t.manufacturer }

// Parameters returns the four circuit parameters in rs, ls, cs, c0 order.
func (t *Transducer) Parameters() (rs, ls, cs, c0 float64) {
	return t.rs, t.ls, t.cs, t.c0
}

// Frequency returns the series resonance frequency 1/(2π·√(ls·cs)) in Hz.
func (t *Transducer) Frequency() float64 {
	return 1 / (2 * math.Pi * math.Sqrt(t.ls*t.cs))
}

// String returns the name when set, otherwise the four circuit parameters.
func (t *Transducer) String() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("Transducer(rs=%g, ls=%g, cs=%g, c0=%g)", t.rs, t.ls, t.cs, t.c0)
}
