// Package analysis computes descriptive statistics over numeric tables and
// renders scatter and pair-plot figures from them.
package analysis

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/rubythedev/data-analysis-and-visualization/internal/plot"
	"github.com/rubythedev/data-analysis-and-visualization/internal/table"
)

// Analysis computes statistics over a table it does not own. It always
// reflects the table's current state, including after a row-range
// restriction, and never mutates the table itself.
type Analysis struct {
	tbl *table.Table
	gal *plot.Gallery
}

// New returns an analysis over tbl with a default gallery that saves
// figures to the current directory.
func New(tbl *table.Table) *Analysis {
	return NewWithGallery(tbl, plot.NewGallery(nil, ""))
}

// NewWithGallery returns an analysis over tbl that queues figures on gal.
func NewWithGallery(tbl *table.Table, gal *plot.Gallery) *Analysis {
	return &Analysis{tbl: tbl, gal: gal}
}

// SetTable re-points the analysis at another table without rebuilding it.
func (a *Analysis) SetTable(tbl *table.Table) { a.tbl = tbl }

// Table returns the table under analysis.
func (a *Analysis) Table() *table.Table { return a.tbl }

// Gallery returns the figure gallery used by the plotting methods.
func (a *Analysis) Gallery() *plot.Gallery { return a.gal }

// Min computes the minimum of each requested header's column, optionally
// restricted to the given row indices. Empty rows means every row.
func (a *Analysis) Min(headers []string, rows []int) ([]float64, error) {
	return a.reduce("min", headers, rows, 1, func(col []float64) float64 {
		m := col[0]
		for _, v := range col[1:] {
			if v < m {
				m = v
			}
		}
		return m
	})
}

// Max computes the maximum of each requested header's column.
func (a *Analysis) Max(headers []string, rows []int) ([]float64, error) {
	return a.reduce("max", headers, rows, 1, func(col []float64) float64 {
		m := col[0]
		for _, v := range col[1:] {
			if v > m {
				m = v
			}
		}
		return m
	})
}

// Range returns the pair (mins, maxes) for the requested headers, computed
// independently by Min and Max.
func (a *Analysis) Range(headers []string, rows []int) ([]float64, []float64, error) {
	mins, err := a.Min(headers, rows)
	if err != nil {
		return nil, nil, err
	}
	maxes, err := a.Max(headers, rows)
	if err != nil {
		return nil, nil, err
	}
	return mins, maxes, nil
}

// Mean computes the arithmetic mean of each requested header's column,
// dividing by the number of selected rows.
func (a *Analysis) Mean(headers []string, rows []int) ([]float64, error) {
	return a.reduce("mean", headers, rows, 1, func(col []float64) float64 {
		var sum float64
		for _, v := range col {
			sum += v
		}
		return sum / float64(len(col))
	})
}

// Var computes the sample variance of each requested header's column using
// the n-1 denominator. It fails when fewer than two rows are selected.
func (a *Analysis) Var(headers []string, rows []int) ([]float64, error) {
	return a.reduce("var", headers, rows, 2, func(col []float64) float64 {
		var sum float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(len(col))
		var ss float64
		for _, v := range col {
			d := v - mean
			ss += d * d
		}
		return ss / float64(len(col)-1)
	})
}

// Std computes the element-wise square root of Var and inherits its
// failure conditions.
func (a *Analysis) Std(headers []string, rows []int) ([]float64, error) {
	vars, err := a.Var(headers, rows)
	if err != nil {
		return nil, err
	}
	stds := make([]float64, len(vars))
	for i, v := range vars {
		stds[i] = math.Sqrt(v)
	}
	return stds, nil
}

// Median returns the middle value of each requested header's column.
func (a *Analysis) Median(headers []string, rows []int) ([]float64, error) {
	return a.reduce("median", headers, rows, 1, func(col []float64) float64 {
		return stats.Sample{Xs: col}.Quantile(0.5)
	})
}

// Percentile returns the q-th percentile of each requested header's
// column, with q in [0, 1]. Values outside that range are capped.
func (a *Analysis) Percentile(headers []string, q float64, rows []int) ([]float64, error) {
	return a.reduce("percentile", headers, rows, 1, func(col []float64) float64 {
		return stats.Sample{Xs: col}.Quantile(q)
	})
}

// Correlation computes the Pearson correlation coefficient between two
// columns, clamped to [-1, 1]. A flat column has no defined correlation
// and yields 0.
func (a *Analysis) Correlation(xHeader, yHeader string, rows []int) (float64, error) {
	cols, err := a.columns([]string{xHeader, yHeader}, rows)
	if err != nil {
		return 0, err
	}
	xs, ys := cols[0], cols[1]
	if len(xs) < 2 {
		return 0, &DenominatorError{Op: "correlation", Rows: len(xs)}
	}
	n := float64(len(xs))
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range xs {
		x, y := xs[i], ys[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0, nil
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, nil
	}
	return r, nil
}

// reduce applies f to each selected column. Aggregates whose denominator
// would collapse for the selected row count fail before any column is
// computed.
func (a *Analysis) reduce(op string, headers []string, rows []int, minRows int, f func([]float64) float64) ([]float64, error) {
	cols, err := a.columns(headers, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cols))
	if len(cols) == 0 {
		return out, nil
	}
	if n := len(cols[0]); n < minRows {
		return nil, &DenominatorError{Op: op, Rows: n}
	}
	for i, col := range cols {
		out[i] = f(col)
	}
	return out, nil
}

// columns returns the selected data column-major, one fresh slice per
// requested header.
func (a *Analysis) columns(headers []string, rows []int) ([][]float64, error) {
	data, err := a.tbl.Select(headers, rows)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, len(headers))
	for i := range cols {
		cols[i] = make([]float64, len(data))
	}
	for r, row := range data {
		for c := range headers {
			cols[c][r] = row[c]
		}
	}
	return cols, nil
}
