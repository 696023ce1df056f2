package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/rubythedev/data-analysis-and-visualization/internal/table"
)

// newTestTable builds a small two-column dataset where c is exactly 10*a,
// so aggregate expectations stay easy to read off.
func newTestTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New([]string{"a", "c"}, [][]float64{{1, 10}, {2, 20}, {3, 30}})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func assertVector(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("vector = %v, want %v", got, want)
	}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-9) {
			t.Fatalf("vector[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestMinMaxRequestOrder(t *testing.T) {
	a := New(newTestTable(t))
	mins, err := a.Min([]string{"c", "a"}, nil)
	if err != nil {
		t.Fatalf("min: %v", err)
	}
	assertVector(t, mins, []float64{10, 1})
	maxes, err := a.Max([]string{"c", "a"}, nil)
	if err != nil {
		t.Fatalf("max: %v", err)
	}
	assertVector(t, maxes, []float64{30, 3})
}

func TestRangeMatchesMinAndMax(t *testing.T) {
	a := New(newTestTable(t))
	mins, maxes, err := a.Range([]string{"a", "c"}, nil)
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	assertVector(t, mins, []float64{1, 10})
	assertVector(t, maxes, []float64{3, 30})
}

func TestMeanVarStdKnownValues(t *testing.T) {
	a := New(newTestTable(t))
	headers := []string{"a", "c"}

	means, err := a.Mean(headers, nil)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	assertVector(t, means, []float64{2, 20})

	vars, err := a.Var(headers, nil)
	if err != nil {
		t.Fatalf("var: %v", err)
	}
	assertVector(t, vars, []float64{1, 100})

	stds, err := a.Std(headers, nil)
	if err != nil {
		t.Fatalf("std: %v", err)
	}
	for i := range stds {
		if !almostEqual(stds[i], math.Sqrt(vars[i]), 1e-12) {
			t.Fatalf("std[%d] = %v, want sqrt(%v)", i, stds[i], vars[i])
		}
	}
}

func TestAggregatesOverRowSubset(t *testing.T) {
	a := New(newTestTable(t))
	rows := []int{0, 2}

	means, err := a.Mean([]string{"a", "c"}, rows)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	assertVector(t, means, []float64{2, 20})

	vars, err := a.Var([]string{"a", "c"}, rows)
	if err != nil {
		t.Fatalf("var: %v", err)
	}
	assertVector(t, vars, []float64{2, 200})
}

func TestMeanFailsAfterEmptyRestriction(t *testing.T) {
	tbl := newTestTable(t)
	a := New(tbl)
	tbl.LimitSamples(2, 2)

	_, err := a.Mean([]string{"a"}, nil)
	var de *DenominatorError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DenominatorError", err)
	}
	if de.Op != "mean" || de.Rows != 0 {
		t.Fatalf("error = %+v, want op mean over 0 rows", de)
	}
}

func TestVarSingleRowFails(t *testing.T) {
	a := New(newTestTable(t))
	_, err := a.Var([]string{"a"}, []int{1})
	var de *DenominatorError
	if !errors.As(err, &de) || de.Op != "var" || de.Rows != 1 {
		t.Fatalf("err = %v, want var DenominatorError over 1 row", err)
	}
}

func TestStdInheritsVarFailure(t *testing.T) {
	a := New(newTestTable(t))
	_, err := a.Std([]string{"a"}, []int{0})
	var de *DenominatorError
	if !errors.As(err, &de) || de.Op != "var" {
		t.Fatalf("err = %v, want the var failure passed through", err)
	}
}

func TestMinUnknownHeader(t *testing.T) {
	a := New(newTestTable(t))
	_, err := a.Min([]string{"missing"}, nil)
	var uh *table.UnknownHeaderError
	if !errors.As(err, &uh) || uh.Header != "missing" {
		t.Fatalf("err = %v, want UnknownHeaderError for missing", err)
	}
}

func TestMedianAndPercentileBounds(t *testing.T) {
	a := New(newTestTable(t))
	headers := []string{"a", "c"}

	medians, err := a.Median(headers, nil)
	if err != nil {
		t.Fatalf("median: %v", err)
	}
	assertVector(t, medians, []float64{2, 20})

	lo, err := a.Percentile(headers, 0, nil)
	if err != nil {
		t.Fatalf("percentile 0: %v", err)
	}
	assertVector(t, lo, []float64{1, 10})

	hi, err := a.Percentile(headers, 1, nil)
	if err != nil {
		t.Fatalf("percentile 1: %v", err)
	}
	assertVector(t, hi, []float64{3, 30})
}

func TestPercentileInterpolatesAndCaps(t *testing.T) {
	a := New(newTestTable(t))
	headers := []string{"a", "c"}

	q25, err := a.Percentile(headers, 0.25, nil)
	if err != nil {
		t.Fatalf("percentile 0.25: %v", err)
	}
	assertVector(t, q25, []float64{7.0 / 6.0, 35.0 / 3.0})

	below, err := a.Percentile(headers, -0.5, nil)
	if err != nil {
		t.Fatalf("percentile -0.5: %v", err)
	}
	assertVector(t, below, []float64{1, 10})

	above, err := a.Percentile(headers, 1.5, nil)
	if err != nil {
		t.Fatalf("percentile 1.5: %v", err)
	}
	assertVector(t, above, []float64{3, 30})
}

func TestMedianEmptySelectionFails(t *testing.T) {
	tbl := newTestTable(t)
	a := New(tbl)
	tbl.LimitSamples(0, 0)
	_, err := a.Median([]string{"a"}, nil)
	var de *DenominatorError
	if !errors.As(err, &de) || de.Op != "median" || de.Rows != 0 {
		t.Fatalf("err = %v, want median DenominatorError over 0 rows", err)
	}
}

func TestCorrelation(t *testing.T) {
	a := New(newTestTable(t))

	r, err := a.Correlation("a", "c", nil)
	if err != nil {
		t.Fatalf("correlation: %v", err)
	}
	if !almostEqual(r, 1, 1e-12) {
		t.Fatalf("r = %v, want 1 for a perfectly linear pair", r)
	}

	inverse, err := table.New([]string{"x", "y"}, [][]float64{{1, 3}, {2, 2}, {3, 1}})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	a.SetTable(inverse)
	r, err = a.Correlation("x", "y", nil)
	if err != nil {
		t.Fatalf("correlation: %v", err)
	}
	if !almostEqual(r, -1, 1e-12) {
		t.Fatalf("r = %v, want -1 for a perfectly inverse pair", r)
	}
}

func TestCorrelationFlatColumnIsZero(t *testing.T) {
	flat, err := table.New([]string{"x", "y"}, [][]float64{{1, 5}, {2, 5}, {3, 5}})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	a := New(flat)
	r, err := a.Correlation("x", "y", nil)
	if err != nil {
		t.Fatalf("correlation: %v", err)
	}
	if r != 0 {
		t.Fatalf("r = %v, want 0 for a flat column", r)
	}
}

func TestCorrelationTooFewRows(t *testing.T) {
	a := New(newTestTable(t))
	_, err := a.Correlation("a", "c", []int{0})
	var de *DenominatorError
	if !errors.As(err, &de) || de.Op != "correlation" || de.Rows != 1 {
		t.Fatalf("err = %v, want correlation DenominatorError over 1 row", err)
	}
}

func TestSetTableSwapsDataset(t *testing.T) {
	a := New(newTestTable(t))
	replacement, err := table.New([]string{"a"}, [][]float64{{100}, {200}})
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	a.SetTable(replacement)
	if a.Table() != replacement {
		t.Fatal("Table() does not return the swapped-in table")
	}
	means, err := a.Mean([]string{"a"}, nil)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	assertVector(t, means, []float64{150})
}

func TestStatisticsObserveRestriction(t *testing.T) {
	tbl := newTestTable(t)
	a := New(tbl)
	tbl.LimitSamples(0, 1)
	means, err := a.Mean([]string{"a", "c"}, nil)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	assertVector(t, means, []float64{1, 10})
}
