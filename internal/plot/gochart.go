package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// GoChart renders figures as PNG images using go-chart.
type GoChart struct{}

// Scatter renders one x/y series as a point cloud.
func (GoChart) Scatter(xs, ys []float64, o Options) (*Figure, error) {
	o = o.withDefaults()
	img, err := renderScatter(xs, ys, o)
	if err != nil {
		return nil, err
	}
	return newFigure(o.Title, img), nil
}

// PairGrid renders every combination of the given columns as a square grid
// of scatter cells, with the grid title drawn across the top band.
func (GoChart) PairGrid(labels []string, columns [][]float64, o Options) (*Figure, error) {
	o = o.withDefaults()
	img, err := renderPairGrid(labels, columns, o)
	if err != nil {
		return nil, err
	}
	return newFigure(o.Title, img), nil
}

func renderScatter(xs, ys []float64, o Options) ([]byte, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("scatter series length mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("scatter needs at least 2 points, got %d", len(xs))
	}
	ch := chart.Chart{
		Title:      o.Title,
		TitleStyle: chart.Style{FontSize: o.FontSize},
		Width:      o.Width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 24}},
		XAxis: chart.XAxis{
			Name:      o.XLabel,
			NameStyle: chart.Style{FontSize: o.FontSize},
			Range:     paddedRange(xs),
		},
		YAxis: chart.YAxis{
			Name:      o.YLabel,
			NameStyle: chart.Style{FontSize: o.FontSize},
			Range:     paddedRange(ys),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: pointStyle(o)},
		},
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPairGrid(labels []string, columns [][]float64, o Options) ([]byte, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("pair grid needs at least one variable")
	}
	if len(labels) != len(columns) {
		return nil, fmt.Errorf("pair grid: %d labels for %d columns", len(labels), len(columns))
	}
	rows := len(columns[0])
	for i, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("pair grid: column %q has %d values, want %d", labels[i], len(col), rows)
		}
	}
	if rows < 2 {
		return nil, fmt.Errorf("pair grid needs at least 2 samples, got %d", rows)
	}

	n := len(labels)
	size := o.Width
	titleBand := 0
	if o.Title != "" {
		titleBand = size / 20
	}
	cellW := size / n
	cellH := (size - titleBand) / n

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	// Row i fixes the x variable, column j the y variable. Edge labels only,
	// like the interior cells of a lattice plot.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell, err := renderPairCell(labels, columns, i, j, cellW, cellH, o)
			if err != nil {
				return nil, err
			}
			img, err := png.Decode(bytes.NewReader(cell))
			if err != nil {
				return nil, fmt.Errorf("decode pair cell %s/%s: %w", labels[i], labels[j], err)
			}
			x0 := j * cellW
			y0 := titleBand + i*cellH
			draw.Draw(canvas, image.Rect(x0, y0, x0+cellW, y0+cellH), img, image.Point{}, draw.Src)
		}
	}

	if o.Title != "" {
		drawGridTitle(canvas, o.Title, size, titleBand)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode pair grid: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPairCell(labels []string, columns [][]float64, i, j, w, h int, o Options) ([]byte, error) {
	n := len(labels)
	ch := chart.Chart{
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 6, Left: 6, Right: 6, Bottom: 6}},
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 8},
			Range: paddedRange(columns[i]),
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 8},
			Range: paddedRange(columns[j]),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: columns[i], YValues: columns[j], Style: pointStyle(o)},
		},
	}
	if j == 0 {
		ch.YAxis.Name = labels[i]
		ch.YAxis.NameStyle = chart.Style{FontSize: 10}
	}
	if i == n-1 {
		ch.XAxis.Name = labels[j]
		ch.XAxis.NameStyle = chart.Style{FontSize: 10}
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pair cell %s/%s: %w", labels[i], labels[j], err)
	}
	return buf.Bytes(), nil
}

// drawGridTitle centers the title text in the band above the grid.
func drawGridTitle(canvas *image.RGBA, title string, width, band int) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: canvas, Src: image.Black, Face: face}
	tw := d.MeasureString(title).Ceil()
	x := (width - tw) / 2
	if x < 0 {
		x = 0
	}
	y := band/2 + face.Metrics().Ascent.Ceil()/2
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(title)
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(o Options) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    o.DotWidth,
		DotColor:    o.DotColor,
	}
}

// paddedRange widens the data extent by 5% on each side so edge points stay
// visible. A flat series gets a unit band around its value, which keeps the
// axis non-degenerate.
func paddedRange(vs []float64) *chart.ContinuousRange {
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
	}
	pad := (max - min) * 0.05
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}
