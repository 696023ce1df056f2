package analysis

import (
	"github.com/rubythedev/data-analysis-and-visualization/internal/plot"
)

// Scatter renders indVar against depVar across every sample and queues the
// figure on the gallery. Axis labels default to the variable names. It
// returns the plotted x and y values.
func (a *Analysis) Scatter(indVar, depVar string, o plot.Options) ([]float64, []float64, error) {
	xs, err := a.tbl.Column(indVar, nil)
	if err != nil {
		return nil, nil, err
	}
	ys, err := a.tbl.Column(depVar, nil)
	if err != nil {
		return nil, nil, err
	}
	if o.XLabel == "" {
		o.XLabel = indVar
	}
	if o.YLabel == "" {
		o.YLabel = depVar
	}
	if _, err := a.gal.Scatter(xs, ys, o); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// PairPlot renders the full grid of variable pairs, diagonal included,
// across every sample and queues the figure on the gallery. Grid cells use
// smaller markers than standalone scatters so dense panels stay readable.
func (a *Analysis) PairPlot(vars []string, o plot.Options) (*plot.Figure, error) {
	cols, err := a.columns(vars, nil)
	if err != nil {
		return nil, err
	}
	if o.DotWidth <= 0 {
		o.DotWidth = 2
	}
	return a.gal.PairGrid(vars, cols, o)
}

// Show writes every queued figure to the gallery directory and returns the
// resulting paths.
func (a *Analysis) Show() ([]string, error) {
	return a.gal.Show()
}
