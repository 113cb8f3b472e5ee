// Command bvdinfo prints transient-response figures for BVD transducers.
//
// Usage:
//
//	bvdinfo [flags] [transducer-name ...]
//
// Without arguments it prints the analysis for all predefined
// transducers.
//
// Examples:
//
//	bvdinfo SMBLTD45F40H_1
//	bvdinfo -rp-lo 10 -rp-hi 5000 -ucw 40 -ub 60
//	bvdinfo -catalog lab.json GB-4540-4SH
//	bvdinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bvd/bvd"
	"github.com/cwbudde/algo-bvd/measure/activation"
	"github.com/cwbudde/algo-bvd/measure/deactivation"
	"github.com/cwbudde/algo-bvd/report"
)

func main() {
	rpLo := flag.Float64("rp-lo", 10, "lower bound of the damping resistance search in ohms")
	rpHi := flag.Float64("rp-hi", 5000, "upper bound of the damping resistance search in ohms")
	ucw := flag.Float64("ucw", 40, "continuous-wave drive amplitude in volts")
	ub := flag.Float64("ub", 60, "boost drive amplitude in volts")
	catalog := flag.String("catalog", "", "JSON catalog file instead of the built-in presets")
	list := flag.Bool("list", false, "list available transducer names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bvdinfo [flags] [transducer-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints deactivation and activation figures for BVD transducers.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the analysis for all catalog entries.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	lib := bvd.Presets()

	if *catalog != "" {
		var err error

		lib, err = bvd.LoadLibraryFile(*catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *list {
		for _, name := range lib.Names() {
			fmt.Println(name)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = lib.Names()
	}

	var tds []*bvd.Transducer

	for _, name := range names {
		td, err := lib.Select(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown transducer %q (use -list to see available)\n", name)
			continue
		}

		tds = append(tds, td)
	}

	if len(tds) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching transducers\n")
		os.Exit(1)
	}

	if err := printAnalysis(tds, *rpLo, *rpHi, *ucw, *ub); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printAnalysis(tds []*bvd.Transducer, rpLo, rpHi, ucw, ub float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Transducer\tfr\ttau\tRp opt\ttau damped\tdamping gain\tswitch at\tsettle boosted\tboost gain\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(tw, "----------\t--\t---\t------\t----------\t------------\t---------\t--------------\t----------\n"); err != nil {
		return err
	}

	for _, td := range tds {
		deact, err := deactivation.EvaluatePotential(td, rpLo, rpHi)
		if err != nil {
			return fmt.Errorf("%s: %w", td.Name(), err)
		}

		act, err := activation.EvaluatePotential(td, ucw, ub)
		if err != nil {
			return fmt.Errorf("%s: %w", td.Name(), err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f %%\t%s\t%s\t%.1f %%\n",
			td.Name(),
			report.FormatFrequency(td.Frequency()),
			report.FormatValue(deact.TauWithout, "s"),
			report.FormatValue(deact.Resistance, "Ω"),
			report.FormatValue(deact.TauWith, "s"),
			deact.ImprovementPercent,
			report.FormatValue(act.SwitchTime, "s"),
			report.FormatValue(act.SettleWithBoost, "s"),
			act.ImprovementPercent,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}
