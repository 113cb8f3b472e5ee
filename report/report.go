package report

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/measure/activation"
	"github.com/cwbudde/algo-bvd/measure/deactivation"
)

// WriteTransducer writes the transducer header: labels, the four circuit
// parameters and the series resonance frequency.
func WriteTransducer(w io.Writer, td *bvd.Transducer) error {
	err := td.Validate()
	if err != nil {
		return err
	}

	name := td.Name()
	if name == "" {
		name = "(unnamed)"
	}

	_, err = fmt.Fprintf(w, "Transducer: %s\n", name)
	if err != nil {
		return err
	}

	if m := td.Manufacturer(); m != "" {
		if _, err := fmt.Fprintf(w, "Manufacturer: %s\n", m); err != nil {
			return err
		}
	}

	rs, ls, cs, c0 := td.Parameters()

	_, err = fmt.Fprintf(w, "  rs: %s\n  ls: %s\n  cs: %s\n  c0: %s\n  fr: %s\n",
		FormatValue(rs, "Ω"),
		FormatValue(ls, "H"),
		FormatValue(cs, "F"),
		FormatValue(c0, "F"),
		FormatFrequency(td.Frequency()),
	)

	return err
}

// WriteDeactivationPotential writes the transducer header followed by the
// damping-resistor optimization summary over [lo, hi].
func WriteDeactivationPotential(w io.Writer, td *bvd.Transducer, lo, hi float64) error {
	err := WriteTransducer(w, td)
	if err != nil {
		return err
	}

	pot, err := deactivation.EvaluatePotential(td, lo, hi)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Deactivation (open-circuit damping)\n"+
		"  optimal Rp:  %s\n"+
		"  tau with Rp: %s\n"+
		"  tau without: %s\n"+
		"  improvement: %s (%.1f %%)\n",
		FormatValue(pot.Resistance, "Ω"),
		FormatValue(pot.TauWith, "s"),
		FormatValue(pot.TauWithout, "s"),
		FormatValue(pot.Improvement, "s"),
		pot.ImprovementPercent,
	)
	if err != nil {
		return err
	}

	if pot.BoundaryLimited {
		_, err = fmt.Fprintf(w, "  note: optimum within 1%% of a search bound\n")
	}

	return err
}

// WriteActivationPotential writes the transducer header followed by the
// overboost summary for the amplitude pair (ucw, ub).
func WriteActivationPotential(w io.Writer, td *bvd.Transducer, ucw, ub float64) error {
	err := WriteTransducer(w, td)
	if err != nil {
		return err
	}

	pot, err := activation.EvaluatePotential(td, ucw, ub)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Activation (voltage overboost %g V → %g V)\n"+
		"  switch at:      %s\n"+
		"  settle plain:   %s\n"+
		"  settle boosted: %s\n"+
		"  improvement:    %s (%.1f %%)\n",
		ub, ucw,
		FormatValue(pot.SwitchTime, "s"),
		FormatValue(pot.SettleWithoutBoost, "s"),
		FormatValue(pot.SettleWithBoost, "s"),
		FormatValue(pot.Improvement, "s"),
		pot.ImprovementPercent,
	)
	if err != nil {
		return err
	}

	if pot.NoImprovement {
		_, err = fmt.Fprintf(w, "  note: boosting gave no improvement\n")
	}

	return err
}
