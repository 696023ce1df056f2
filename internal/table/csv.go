package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Type markers recognized in the second row of a dataset. Only columns
// marked numeric are retained; enum, string and date columns are dropped
// entirely and never appear in the table.
const (
	MarkerNumeric = "numeric"
	MarkerEnum    = "enum"
	MarkerString  = "string"
	MarkerDate    = "date"
)

// Load reads a CSV dataset from path: a header row, a type-marker row and
// zero or more data rows.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a CSV dataset from r. name stands in for the file path in
// diagnostics.
func Read(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Path: name, Reason: "missing header row"}
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	markers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Path: name, Reason: "missing type-marker row"}
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, &SchemaError{Path: name, Reason: fmt.Sprintf("type-marker row has %d fields, want %d", len(markers), len(header))}
		}
		return nil, fmt.Errorf("read type-marker row: %w", err)
	}

	sch, err := buildSchema(name, header, markers)
	if err != nil {
		return nil, err
	}

	var matrix [][]float64
	for line := 3; ; line++ {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		row, err := sch.parseRow(line, rec)
		if err != nil {
			return nil, err
		}
		matrix = append(matrix, row)
	}
	if matrix == nil {
		matrix = [][]float64{}
	}
	return &Table{path: name, headers: sch.headers, headerIndex: sch.index, matrix: matrix}, nil
}

// schema is the retained-column view fixed by the first two rows: which
// source positions survive and what they are called.
type schema struct {
	name    string
	keep    []int
	headers []string
	index   map[string]int
}

// buildSchema validates the type-marker row against the header row and fixes
// the retained columns. Any marker outside the recognized set fails the
// whole parse; there is no degraded zero-column mode.
func buildSchema(name string, header, markers []string) (*schema, error) {
	if len(markers) != len(header) {
		return nil, &SchemaError{Path: name, Reason: fmt.Sprintf("type-marker row has %d fields, want %d", len(markers), len(header))}
	}
	keep := make([]int, 0, len(markers))
	for i, m := range markers {
		switch strings.TrimSpace(m) {
		case MarkerNumeric:
			keep = append(keep, i)
		case MarkerEnum, MarkerString, MarkerDate:
		default:
			return nil, &SchemaError{
				Path:   name,
				Reason: fmt.Sprintf("column %d: %q is not a type marker (numeric, enum, string, date)", i+1, strings.TrimSpace(m)),
			}
		}
	}
	headers := make([]string, len(keep))
	index := make(map[string]int, len(keep))
	for out, in := range keep {
		h := strings.TrimSpace(header[in])
		if _, dup := index[h]; dup {
			return nil, &SchemaError{Path: name, Reason: fmt.Sprintf("duplicate numeric header %q", h)}
		}
		headers[out] = h
		index[h] = out
	}
	return &schema{name: name, keep: keep, headers: headers, index: index}, nil
}

// parseRow extracts and parses the retained positions of one data row.
// line is the 1-based row number in the source, for diagnostics.
func (s *schema) parseRow(line int, rec []string) ([]float64, error) {
	row := make([]float64, len(s.keep))
	for out, in := range s.keep {
		var raw string
		if in < len(rec) {
			raw = strings.TrimSpace(rec[in])
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ParseError{Path: s.name, Row: line, Column: s.headers[out], Value: raw}
		}
		row[out] = v
	}
	return row, nil
}
