// Package render draws density curves to PNG files.
package render

import (
	"image/color"
	"io"

	"distplot/internal/analysis"
	"distplot/internal/errors"

	"github.com/google/renameio/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls figure size and resolution
type Options struct {
	Title    string
	XLabel   string
	WidthIn  float64
	HeightIn float64
	// DPIScale multiplies vgimg.DefaultDPI; 2 gives a high-DPI image.
	DPIScale float64
}

// DefaultOptions matches a 6.4x4.8in figure at twice the default DPI
func DefaultOptions() Options {
	return Options{
		Title:    "Kernel density estimate",
		XLabel:   "value",
		WidthIn:  6.4,
		HeightIn: 4.8,
		DPIScale: 2,
	}
}

var (
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	fillColor = color.RGBA{R: 31, G: 119, B: 180, A: 64}
)

// Density renders curve as a PNG at path, replacing any existing file.
// The image is written next to path first so a failure never leaves a
// truncated file behind.
func Density(curve analysis.Curve, opts Options, path string) error {
	if len(curve.X) == 0 || len(curve.X) != len(curve.Y) {
		return errors.RenderError("density curve is empty or malformed", nil)
	}

	p, err := newDensityPlot(curve, opts)
	if err != nil {
		return err
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch),
		vgimg.UseDPI(int(vgimg.DefaultDPI*opts.DPIScale)),
	)
	p.Draw(draw.New(canvas))

	return writeAtomic(path, vgimg.PngCanvas{Canvas: canvas})
}

func newDensityPlot(curve analysis.Curve, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = "density"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(curve.X))
	for i := range curve.X {
		xys[i].X = curve.X[i]
		xys[i].Y = curve.Y[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.RenderError("invalid density curve", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)
	line.FillColor = fillColor
	p.Add(line)
	p.Y.Min = 0

	return p, nil
}

func writeAtomic(path string, img io.WriterTo) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return errors.RenderError("failed to create output file", err)
	}
	defer pending.Cleanup()

	if _, err := img.WriteTo(pending); err != nil {
		return errors.RenderError("failed to encode image", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return errors.RenderError("failed to save image", err)
	}
	return nil
}
