package table

import (
	"fmt"
	"strings"
)

// SchemaError indicates the header or type-marker rows cannot produce a
// valid table. Construction fails outright; there is no degraded mode.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid schema in %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid schema: %s", e.Reason)
}

// ParseError indicates a value in a numeric column that does not parse as a
// 64-bit float.
type ParseError struct {
	Path   string
	Row    int // 1-based row number in the source file
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d, column %q: cannot parse %q as a number", e.Path, e.Row, e.Column, e.Value)
}

// UnknownHeaderError indicates a selection naming a header the table does
// not carry.
type UnknownHeaderError struct {
	Header string
	Known  []string
}

func (e *UnknownHeaderError) Error() string {
	return fmt.Sprintf("unknown header %q (table has: %s)", e.Header, strings.Join(e.Known, ", "))
}

// RowIndexError indicates a row index outside [0, NumSamples).
type RowIndexError struct {
	Index int
	Rows  int
}

func (e *RowIndexError) Error() string {
	return fmt.Sprintf("row index %d out of range for %d samples", e.Index, e.Rows)
}
