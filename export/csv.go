// Package export persists sampled curves and sweep results as flat
// tabular CSV for downstream plotting or storage.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Errors returned by the CSV writers.
var (
	ErrColumnMismatch = errors.New("export: column lengths differ")
	ErrNoColumns      = errors.New("export: no amplitude columns")
)

// WriteCurveCSV writes rows of time plus one amplitude value per column.
// The header must carry one entry per written column (time first).
// Values are formatted with 15 significant digits.
func WriteCurveCSV(w io.Writer, header []string, times []float64, columns ...[]float64) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}

	for i, col := range columns {
		if len(col) != len(times) {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrColumnMismatch, i, len(col), len(times))
		}
	}

	if len(header) != len(columns)+1 {
		return fmt.Errorf("%w: header has %d entries, want %d", ErrColumnMismatch, len(header), len(columns)+1)
	}

	cw := csv.NewWriter(w)

	err := cw.Write(header)
	if err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}

	row := make([]string, len(columns)+1)
	for r := range times {
		row[0] = formatSample(times[r])
		for c, col := range columns {
			row[c+1] = formatSample(col[r])
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: writing row %d: %w", r, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteTauSweepCSV writes a damping-resistance sweep as rp_ohm/tau_s
// rows.
func WriteTauSweepCSV(w io.Writer, rps, taus []float64) error {
	return WriteCurveCSV(w, []string{"rp_ohm", "tau_s"}, rps, taus)
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', 15, 64)
}
