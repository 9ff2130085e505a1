package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/irishgrid/internal/convert"
	"github.com/shinji-kodama/irishgrid/internal/model"
)

// Input is one row of the input table.
type Input struct {
	// Index is the 1-based row number.
	Index int

	// Fields are the row's cells after splitting.
	Fields []string
}

// headerNames are first cells that mark a header row rather than data.
var headerNames = map[string]bool{
	"grid_ref":       true,
	"gridref":        true,
	"irish grid ref": true,
	"x":              true,
	"easting":        true,
	"lat":            true,
	"latitude":       true,
}

// InputsFromArgs builds rows from command-line arguments, one row per
// argument, e.g. "V 92315 85538" or "52.01,-9.57".
func InputsFromArgs(args []string, kind model.Kind) []Input {
	inputs := make([]Input, 0, len(args))
	for i, arg := range args {
		inputs = append(inputs, Input{Index: i + 1, Fields: convert.SplitFields(arg, kind)})
	}
	return inputs
}

// ReadInputs reads rows from CSV text. Each record is one row:
//   - grid references may sit in a single cell or span three cells
//   - XY and lat/lon take two cells, or one cell separated by whitespace
//
// Blank lines and lines starting with '#' are skipped, as is a leading
// header row such as "lat,lon" or "grid_ref".
func ReadInputs(r io.Reader, kind model.Kind) ([]Input, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var inputs []Input
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input rows: %w", err)
		}

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		inputs = append(inputs, Input{Index: len(inputs) + 1, Fields: recordFields(record, kind)})
	}
	return inputs, nil
}

// recordFields normalizes one CSV record into conversion fields.
func recordFields(record []string, kind model.Kind) []string {
	if kind == model.KindGridRef {
		return convert.SplitFields(strings.Join(record, " "), kind)
	}
	if len(record) == 1 {
		return convert.SplitFields(record[0], kind)
	}
	fields := make([]string, len(record))
	for i, cell := range record {
		fields[i] = strings.TrimSpace(cell)
	}
	return fields
}

// isHeader reports whether a record is a column header. A record holding
// any digit is data, so a grid reference in square X split over three cells
// is not mistaken for an "x" header.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	for _, cell := range record {
		if strings.ContainsAny(cell, "0123456789") {
			return false
		}
	}
	return headerNames[strings.ToLower(strings.TrimSpace(record[0]))]
}
