package table

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadXLSX reads a dataset from one sheet of a .xlsx workbook. The sheet
// must be laid out like the CSV format: header row, type-marker row, then
// data rows. sheetName selects a sheet by name; when it is empty, sheetIndex
// (1-based) picks one, defaulting to the first sheet.
func LoadXLSX(path, sheetName string, sheetIndex int) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	target, err := resolveSheetPath(zr, path, sheetName, sheetIndex)
	if err != nil {
		return nil, err
	}
	shared := parseSharedStrings(zipEntry(zr, "xl/sharedStrings.xml"))
	rows := newXLSXRowIter(zipEntry(zr, target), shared)

	header, ok := rows.Next()
	if !ok {
		return nil, &SchemaError{Path: path, Reason: "missing header row"}
	}
	markers, ok := rows.Next()
	if !ok {
		return nil, &SchemaError{Path: path, Reason: "missing type-marker row"}
	}
	sch, err := buildSchema(path, header, markers)
	if err != nil {
		return nil, err
	}

	var matrix [][]float64
	for line := 3; ; line++ {
		rec, ok := rows.Next()
		if !ok {
			break
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
	return &Table{path: path, headers: sch.headers, headerIndex: sch.index, matrix: matrix}, nil
}

type xlsxSheet struct {
	Name string
	RID  string
}

// resolveSheetPath maps the requested sheet to its worksheet entry inside
// the archive, by name first, then by 1-based position with a sheetN.xml
// fallback for workbooks that omit relationship entries.
func resolveSheetPath(zr *zip.Reader, path, sheetName string, sheetIndex int) (string, error) {
	sheets := parseWorkbookSheets(zipEntry(zr, "xl/workbook.xml"))
	rels := parseWorkbookRels(zipEntry(zr, "xl/_rels/workbook.xml.rels"))
	if sheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s.Name, sheetName) {
				if rel, ok := rels[s.RID]; ok {
					return sheetPathFromRel(rel), nil
				}
			}
		}
		names := make([]string, len(sheets))
		for i, s := range sheets {
			names[i] = s.Name
		}
		return "", fmt.Errorf("sheet %q not found in %s (sheets: %s)", sheetName, path, strings.Join(names, ", "))
	}
	idx := sheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx <= len(sheets) {
		if rel, ok := rels[sheets[idx-1].RID]; ok {
			return sheetPathFromRel(rel), nil
		}
	}
	return fmt.Sprintf("xl/worksheets/sheet%d.xml", idx), nil
}

// sheetPathFromRel converts a workbook relationship target into an archive
// entry path. Targets may carry a leading slash or be relative to xl/.
func sheetPathFromRel(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	if strings.HasPrefix(rel, "xl/") {
		return rel
	}
	return "xl/" + rel
}

// zipEntry returns the contents of one archive member, or nil if absent.
func zipEntry(zr *zip.Reader, name string) []byte {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil
		}
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		return b
	}
	return nil
}

// parseWorkbookSheets lists the workbook's sheets in declaration order.
func parseWorkbookSheets(data []byte) []xlsxSheet {
	if len(data) == 0 {
		return nil
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	var sheets []xlsxSheet
	for {
		tok, err := dec.Token()
		if err != nil {
			return sheets
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var s xlsxSheet
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "name":
				s.Name = a.Value
			case "id": // in the r: namespace
				s.RID = a.Value
			}
		}
		sheets = append(sheets, s)
	}
}

func parseWorkbookRels(data []byte) map[string]string {
	out := map[string]string{}
	if len(data) == 0 {
		return out
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var id, target string
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "Id":
				id = a.Value
			case "Target":
				target = a.Value
			}
		}
		if id != "" && target != "" {
			out[id] = target
		}
	}
}

func parseSharedStrings(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out []string
	var buf strings.Builder
	var inT bool
	for {
		tok, err := dec.Token()
		if err != nil {
			return out
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local == "si" {
				buf.Reset()
			}
			if se.Name.Local == "t" {
				inT = true
			}
		case xml.EndElement:
			if se.Name.Local == "t" {
				inT = false
			}
			if se.Name.Local == "si" {
				out = append(out, buf.String())
				buf.Reset()
			}
		case xml.CharData:
			if inT {
				buf.Write([]byte(se))
			}
		}
	}
}

// xlsxRowIter walks the <row> elements of a worksheet, resolving shared
// strings and sparse cell references into dense []string records.
type xlsxRowIter struct {
	dec    *xml.Decoder
	shared []string
	cur    []string
	width  int
	inRow  bool
}

func newXLSXRowIter(data []byte, shared []string) *xlsxRowIter {
	return &xlsxRowIter{dec: xml.NewDecoder(bytes.NewReader(data)), shared: shared}
}

// Next returns the next row of cell values, or false at the end of the sheet.
func (it *xlsxRowIter) Next() ([]string, bool) {
	for {
		tok, err := it.dec.Token()
		if err != nil {
			return nil, false
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local == "row" {
				it.inRow = true
				it.cur = nil
				it.width = 0
			}
			if it.inRow && se.Name.Local == "c" {
				var ref, typ string
				for _, a := range se.Attr {
					switch a.Name.Local {
					case "r":
						ref = a.Value
					case "t":
						typ = a.Value
					}
				}
				col := cellColumn(ref)
				if col < 0 {
					// cells without a reference are positional
					col = len(it.cur)
				}
				if col+1 > it.width {
					it.width = col + 1
				}
				val := it.readCellValue(typ)
				if len(it.cur) <= col {
					grown := make([]string, col+1)
					copy(grown, it.cur)
					it.cur = grown
				}
				it.cur[col] = val
			}
		case xml.EndElement:
			if se.Name.Local == "row" {
				if len(it.cur) < it.width {
					grown := make([]string, it.width)
					copy(grown, it.cur)
					it.cur = grown
				}
				it.inRow = false
				return it.cur, true
			}
		}
	}
}

// readCellValue consumes tokens to the end of the current cell and returns
// its text, resolving shared-string cells through the shared table.
func (it *xlsxRowIter) readCellValue(typ string) string {
	var val string
	for {
		tok, err := it.dec.Token()
		if err != nil {
			return val
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local == "v" || se.Name.Local == "t" {
				var sb strings.Builder
				for {
					inner, err := it.dec.Token()
					if err != nil {
						break
					}
					if end, ok := inner.(xml.EndElement); ok && (end.Name.Local == "v" || end.Name.Local == "t") {
						break
					}
					if ch, ok := inner.(xml.CharData); ok {
						sb.Write([]byte(ch))
					}
				}
				val = sb.String()
			}
		case xml.EndElement:
			if se.Name.Local == "c" {
				if typ == "s" {
					if val == "" {
						// a shared cell without <v> is empty, not index 0
						return ""
					}
					idx := asciiInt(val)
					if idx >= 0 && idx < len(it.shared) {
						return it.shared[idx]
					}
					return ""
				}
				return val
			}
		}
	}
}

// cellColumn converts a cell reference like "C12" to its 0-based column.
func cellColumn(ref string) int {
	i := 0
	for i < len(ref) {
		c := ref[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			i++
			continue
		}
		break
	}
	col := 0
	for _, c := range strings.ToUpper(ref[:i]) {
		col = col*26 + int(c-'A'+1)
	}
	return col - 1
}

func asciiInt(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}
