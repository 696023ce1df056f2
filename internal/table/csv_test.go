package table

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const mixedColumns = `sepal_length,species,petal_width,collected
numeric,string,numeric,date
5.1,setosa,0.2,2024-04-01
4.9,setosa,0.2,2024-04-02
6.3,virginica,1.9,2024-04-03
`

func writeCSV(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadRetainsOnlyNumericColumns(t *testing.T) {
	tbl, err := Load(writeCSV(t, mixedColumns))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !equalStrings(tbl.Headers(), []string{"sepal_length", "petal_width"}) {
		t.Fatalf("headers = %v", tbl.Headers())
	}
	want := [][]float64{{5.1, 0.2}, {4.9, 0.2}, {6.3, 1.9}}
	if !equalMatrix(tbl.All(), want) {
		t.Fatalf("matrix = %v, want %v", tbl.All(), want)
	}
	if tbl.Path() == "" {
		t.Fatal("path not recorded")
	}
}

func TestReadEndToEnd(t *testing.T) {
	text := "a,b,c\nnumeric,string,numeric\n1,x,10\n2,y,20\n3,z,30\n"
	tbl, err := Read(strings.NewReader(text), "demo.csv")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !equalStrings(tbl.Headers(), []string{"a", "c"}) {
		t.Fatalf("headers = %v", tbl.Headers())
	}
	want := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	if !equalMatrix(tbl.All(), want) {
		t.Fatalf("matrix = %v, want %v", tbl.All(), want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestReadTrimsWhitespace(t *testing.T) {
	text := " mass , kind \n numeric , string \n 1.5 , pebble \n"
	tbl, err := Read(strings.NewReader(text), "spaced.csv")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !equalStrings(tbl.Headers(), []string{"mass"}) {
		t.Fatalf("headers = %v", tbl.Headers())
	}
	if tbl.All()[0][0] != 1.5 {
		t.Fatalf("value = %v, want 1.5", tbl.All()[0][0])
	}
}

func TestReadSchemaErrors(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		reason string
	}{
		{"empty input", "", "missing header row"},
		{"no marker row", "a,b\n", "missing type-marker row"},
		{"unrecognized marker", "a,b\nnumeric,float\n1,2\n", "not a type marker"},
		{"marker count mismatch", "a,b\nnumeric\n", "type-marker row has"},
		{"duplicate numeric header", "a,a\nnumeric,numeric\n1,2\n", "duplicate numeric header"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.text), "bad.csv")
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("err = %v, want SchemaError", err)
			}
			if !strings.Contains(schemaErr.Reason, tc.reason) {
				t.Fatalf("reason = %q, want substring %q", schemaErr.Reason, tc.reason)
			}
			if schemaErr.Path != "bad.csv" {
				t.Fatalf("path = %q", schemaErr.Path)
			}
		})
	}
}

func TestReadParseErrorContext(t *testing.T) {
	text := "a,b\nnumeric,string\n1,x\noops,y\n"
	_, err := Read(strings.NewReader(text), "values.csv")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	if parseErr.Path != "values.csv" || parseErr.Row != 4 || parseErr.Column != "a" || parseErr.Value != "oops" {
		t.Fatalf("parse error context = %+v", parseErr)
	}
}

func TestReadRaggedDataRowFails(t *testing.T) {
	text := "a,b\nnumeric,numeric\n1,2\n3\n"
	_, err := Read(strings.NewReader(text), "ragged.csv")
	if err == nil {
		t.Fatal("expected error for ragged data row")
	}
}

func TestReadNoDataRows(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\nnumeric,string\n"), "empty.csv")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tbl.NumSamples() != 0 || tbl.NumDims() != 1 {
		t.Fatalf("shape = %dx%d, want 0x1", tbl.NumSamples(), tbl.NumDims())
	}
}

func TestReadNoNumericColumns(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\nstring,date\nx,2024-01-01\n"), "strings.csv")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tbl.NumDims() != 0 {
		t.Fatalf("dims = %d, want 0", tbl.NumDims())
	}
	if tbl.NumSamples() != 1 {
		t.Fatalf("samples = %d, want 1", tbl.NumSamples())
	}
}
