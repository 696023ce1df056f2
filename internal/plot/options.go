package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Options control how a single figure is rendered. Zero-valued fields fall
// back to DefaultOptions, so callers only set what they want to override.
type Options struct {
	Title    string
	XLabel   string
	YLabel   string
	Width    int
	Height   int
	FontSize float64
	DotWidth float64
	DotColor drawing.Color
}

// DefaultOptions returns the baseline render settings: a 1200x800 canvas
// with large text and red point markers.
func DefaultOptions() Options {
	return Options{
		Width:    1200,
		Height:   800,
		FontSize: 18,
		DotWidth: 4,
		DotColor: chart.ColorRed,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	if o.DotWidth <= 0 {
		o.DotWidth = def.DotWidth
	}
	if o.DotColor.IsZero() {
		o.DotColor = def.DotColor
	}
	return o
}
