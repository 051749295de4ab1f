// Package analyzer runs a single load, summarize, filter and plot pass.
package analyzer

import (
	"io"

	"distplot/internal"
	"distplot/internal/analysis"
	"distplot/internal/config"
	"distplot/internal/errors"
	"distplot/internal/render"
	"distplot/internal/sample"
)

// Analyzer runs the four steps strictly in order. A failing step stops the
// run, so nothing is printed when loading fails and no image is written
// unless every earlier step succeeded.
type Analyzer struct {
	cfg    *config.Config
	out    io.Writer
	logger *internal.Logger
}

// Result carries what a run computed, for callers that want more than the report
type Result struct {
	Summary  analysis.Summary
	Filtered sample.Sample
	Curve    analysis.Curve
}

// New creates an analyzer printing its report to out
func New(cfg *config.Config, out io.Writer, logger *internal.Logger) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Analyzer{cfg: cfg, out: out, logger: logger}
}

// Run analyzes the dataset at path
func (a *Analyzer) Run(path string) (*Result, error) {
	data, err := sample.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded %d observations from %s", data.Len(), path)

	summary, err := analysis.Summarize(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot summarize %s", path)
	}
	a.logger.Trace("summary %+v", summary)
	if _, err := summary.WriteTo(a.out); err != nil {
		return nil, errors.Wrap(err, "failed to print summary")
	}

	filtered, err := analysis.FilterOutliers(data, a.cfg.Analysis.ZThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "outlier filtering failed")
	}
	if dropped := data.Len() - filtered.Len(); dropped > 0 {
		a.logger.Info("excluded %d outliers with |z| >= %g", dropped, a.cfg.Analysis.ZThreshold)
	}

	curve, err := analysis.EstimateDensity(filtered, a.cfg.Analysis.GridPoints)
	if err != nil {
		return nil, errors.Wrap(err, "density estimation failed")
	}
	a.logger.Debug("kde bandwidth %g over %d points", curve.Bandwidth, len(curve.X))

	if err := render.Density(curve, a.renderOptions(), a.cfg.Output.Path); err != nil {
		return nil, err
	}
	a.logger.Info("wrote %s", a.cfg.Output.Path)

	return &Result{Summary: summary, Filtered: filtered, Curve: curve}, nil
}

func (a *Analyzer) renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.WidthIn = a.cfg.Output.WidthIn
	opts.HeightIn = a.cfg.Output.HeightIn
	opts.DPIScale = a.cfg.Output.DPIScale
	return opts
}
