// Package spreadsheet reads lead rows out of uploaded workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrParse is matched by every error returned when a workbook cannot be decoded
var ErrParse = errors.New("unable to parse spreadsheet")

// ParseError wraps the decoder failure
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse.Error(), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Cell is a header-backed cell value
type Cell struct {
	Header string
	Value  string
}

// Row is one data row of the first sheet.
// Number is the 1-based sheet row; Cells are in column order.
type Row struct {
	Number int
	Cells  []Cell
}

// Values returns the row as a header to value map. For repeated headers the right-most cell wins.
func (r Row) Values() map[string]string {
	values := make(map[string]string, len(r.Cells))
	for _, c := range r.Cells {
		values[c.Header] = c.Value
	}
	return values
}

// Parse decodes the workbook and returns the data rows of its first sheet in sheet order.
// The first non-empty row is the header row. Columns with an empty header are ignored and
// rows without any populated header-backed cell are omitted.
func Parse(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Err: errors.New("workbook has no sheets")}
	}

	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	headerIdx := -1
	for i, cols := range grid {
		if !isBlank(cols) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return []Row{}, nil
	}
	headers := grid[headerIdx]

	rows := make([]Row, 0, len(grid)-headerIdx-1)
	for i := headerIdx + 1; i < len(grid); i++ {
		cols := grid[i]
		cells := make([]Cell, 0, len(headers))
		populated := false
		for c, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if c < len(cols) {
				value = cols[c]
			}
			if value != "" {
				populated = true
			}
			cells = append(cells, Cell{Header: header, Value: value})
		}
		if !populated {
			continue
		}
		rows = append(rows, Row{Number: i + 1, Cells: cells})
	}

	return rows, nil
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}
