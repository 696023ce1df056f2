package table

import (
	"fmt"
	"strconv"
	"strings"
)

// previewRows caps how many rows Head, Tail and String show.
const previewRows = 5

// Table holds the numeric portion of a dataset: the retained headers in file
// order, a header-to-column mapping and a dense row-major matrix. Rows are
// samples, columns are variables. The table owns its matrix; every read hands
// out copies, and the only mutation after construction is LimitSamples.
type Table struct {
	path        string
	headers     []string
	headerIndex map[string]int
	matrix      [][]float64
}

// New builds a Table from pre-built parts. Header names must be unique and
// every row must carry one value per header.
func New(headers []string, matrix [][]float64) (*Table, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; dup {
			return nil, &SchemaError{Reason: fmt.Sprintf("duplicate header %q", h)}
		}
		index[h] = i
	}
	hs := make([]string, len(headers))
	copy(hs, headers)
	m := make([][]float64, len(matrix))
	for i, row := range matrix {
		if len(row) != len(headers) {
			return nil, &SchemaError{Reason: fmt.Sprintf("row %d has %d values, want %d", i, len(row), len(headers))}
		}
		m[i] = make([]float64, len(row))
		copy(m[i], row)
	}
	return &Table{headers: hs, headerIndex: index, matrix: m}, nil
}

// Path returns the file the table was loaded from, if any.
func (t *Table) Path() string { return t.path }

// Headers returns the retained column names in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Mappings returns the header-to-column-index mapping.
func (t *Table) Mappings() map[string]int {
	out := make(map[string]int, len(t.headerIndex))
	for h, i := range t.headerIndex {
		out[h] = i
	}
	return out
}

// NumDims returns the number of retained columns.
func (t *Table) NumDims() int { return len(t.headers) }

// NumSamples returns the number of data rows.
func (t *Table) NumSamples() int { return len(t.matrix) }

// Sample returns a copy of one data row.
func (t *Table) Sample(row int) ([]float64, error) {
	if row < 0 || row >= len(t.matrix) {
		return nil, &RowIndexError{Index: row, Rows: len(t.matrix)}
	}
	out := make([]float64, len(t.matrix[row]))
	copy(out, t.matrix[row])
	return out, nil
}

// All returns a copy of the full matrix.
func (t *Table) All() [][]float64 {
	return copyRows(t.matrix)
}

// HeaderIndices resolves header names to column indices, in request order.
func (t *Table) HeaderIndices(headers []string) ([]int, error) {
	out := make([]int, len(headers))
	for i, h := range headers {
		idx, ok := t.headerIndex[h]
		if !ok {
			return nil, &UnknownHeaderError{Header: h, Known: t.Headers()}
		}
		out[i] = idx
	}
	return out, nil
}

// Select returns the sub-matrix at the cross product of the given row
// indices and the columns named by headers, shaped len(rows) x len(headers).
// A nil or empty rows slice selects every row in original order. Select is a
// pure read; the table is never modified.
func (t *Table) Select(headers []string, rows []int) ([][]float64, error) {
	cols, err := t.HeaderIndices(headers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows = make([]int, len(t.matrix))
		for i := range rows {
			rows[i] = i
		}
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		if r < 0 || r >= len(t.matrix) {
			return nil, &RowIndexError{Index: r, Rows: len(t.matrix)}
		}
		sel := make([]float64, len(cols))
		for j, c := range cols {
			sel[j] = t.matrix[r][c]
		}
		out[i] = sel
	}
	return out, nil
}

// Column returns a single selected column as a flat vector.
func (t *Table) Column(header string, rows []int) ([]float64, error) {
	data, err := t.Select([]string{header}, rows)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(data))
	for i, row := range data {
		out[i] = row[0]
	}
	return out, nil
}

// LimitSamples permanently truncates the table to rows [start, end).
// Indices are clamped to the matrix bounds; start >= end leaves an empty
// table rather than an error.
func (t *Table) LimitSamples(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(t.matrix) {
		end = len(t.matrix)
	}
	if start >= end {
		t.matrix = [][]float64{}
		return
	}
	t.matrix = t.matrix[start:end]
}

// Head returns up to the first five rows.
func (t *Table) Head() [][]float64 {
	n := len(t.matrix)
	if n > previewRows {
		n = previewRows
	}
	return copyRows(t.matrix[:n])
}

// Tail returns up to the last five rows, oldest first.
func (t *Table) Tail() [][]float64 {
	start := len(t.matrix) - previewRows
	if start < 0 {
		start = 0
	}
	return copyRows(t.matrix[start:])
}

// String renders the dataset summary: source path, shape, headers and a
// preview of the first rows against the true sample count.
func (t *Table) String() string {
	divider := strings.Repeat("-", 31)
	name := t.path
	if name == "" {
		name = "(in-memory)"
	}
	var b strings.Builder
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%s (%dx%d)\n", name, t.NumSamples(), t.NumDims())
	b.WriteString("Headers:\n")
	b.WriteString("  " + strings.Join(t.headers, "  ") + "\n")
	b.WriteString(divider + "\n")
	show := len(t.matrix)
	if show > previewRows {
		show = previewRows
	}
	fmt.Fprintf(&b, "Showing first %d/%d rows.\n", show, len(t.matrix))
	for _, row := range t.matrix[:show] {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	return b.String()
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		cp := make([]float64, len(r))
		copy(cp, r)
		out[i] = cp
	}
	return out
}
