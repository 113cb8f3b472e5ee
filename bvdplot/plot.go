// Package bvdplot renders transient response curves and damping-sweep
// results as gonum/plot figures.
package bvdplot

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Errors returned by the plot builders.
var (
	ErrEmptyData      = errors.New("bvdplot: no data points")
	ErrLengthMismatch = errors.New("bvdplot: slice lengths differ")
)

// palette cycles through the line colors of multi-curve plots.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// ResponsePlot builds a current-vs-time figure with one line per curve.
// Each curve must match the time grid; labels (one per curve) feed the
// legend and may be empty to suppress it.
func ResponsePlot(times []float64, curves [][]float64, labels []string) (*plot.Plot, error) {
	if len(times) == 0 || len(curves) == 0 {
		return nil, ErrEmptyData
	}

	p := plot.New()
	p.Title.Text = "Transient response"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "current (A)"

	for i, curve := range curves {
		if len(curve) != len(times) {
			return nil, fmt.Errorf("%w: curve %d has %d points, want %d", ErrLengthMismatch, i, len(curve), len(times))
		}

		line, err := newLine(times, curve)
		if err != nil {
			return nil, err
		}

		line.Color = palette[i%len(palette)]
		p.Add(line)

		if i < len(labels) && labels[i] != "" {
			p.Legend.Add(labels[i], line)
		}
	}

	return p, nil
}

// DecaySweepPlot builds a decay-time-vs-resistance figure from a sweep.
func DecaySweepPlot(rps, taus []float64) (*plot.Plot, error) {
	if len(rps) == 0 {
		return nil, ErrEmptyData
	}

	if len(rps) != len(taus) {
		return nil, fmt.Errorf("%w: %d resistances vs %d decay times", ErrLengthMismatch, len(rps), len(taus))
	}

	p := plot.New()
	p.Title.Text = "Decay time vs damping resistance"
	p.X.Label.Text = "Rp (Ω)"
	p.Y.Label.Text = "τ (s)"

	line, err := newLine(rps, taus)
	if err != nil {
		return nil, err
	}

	line.Color = palette[0]
	p.Add(line)

	return p, nil
}

func newLine(xs, ys []float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("bvdplot: %w", err)
	}

	line.LineStyle.Width = vg.Points(1.5)

	return line, nil
}

// SavePNG renders a figure to a PNG file at the given size in inches.
func SavePNG(p *plot.Plot, path string, widthIn, heightIn float64) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bvdplot: creating %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("bvdplot: writing %s: %w", path, err)
	}

	return bw.Flush()
}
