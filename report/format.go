// Package report renders human-readable summaries of transducer
// parameters and transient analyses to an io.Writer, using engineering
// notation for the electrical quantities.
package report

import (
	"fmt"
	"math"
)

// FormatValue renders a value in engineering notation with m/µ/n/p
// scaling, e.g. FormatValue(3.397e-9, "F") = "3.397 nF".
func FormatValue(value float64, unit string) string {
	abs := math.Abs(value)

	switch {
	case abs >= 1 || abs == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case abs >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case abs >= 1e-6:
		return fmt.Sprintf("%.3f µ%s", value*1e6, unit)
	case abs >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case abs >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatFrequency renders a frequency with Hz/kHz/MHz scaling.
func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%.3f Hz", freq)
	}
}
