package table

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/shinji-kodama/irishgrid/internal/convert"
	"github.com/shinji-kodama/irishgrid/internal/model"
)

// Row is one converted row of the output table.
type Row struct {
	// Index is the 1-based row number of the input it came from.
	Index int

	convert.Record
}

// ConvertRows converts every input as kind from, using at most workers
// goroutines. Output order matches input order. Rows do not depend on each
// other, so a failure in one never affects another.
func ConvertRows(inputs []Input, from model.Kind, workers int) []Row {
	if workers < 1 {
		workers = 1
	}

	mapper := iter.Mapper[Input, Row]{MaxGoroutines: workers}
	return mapper.Map(inputs, func(in *Input) Row {
		return Row{Index: in.Index, Record: convert.Resolve(in.Fields, from)}
	})
}

// Failed returns the rows that did not fully convert.
func Failed(rows []Row) []Row {
	var failed []Row
	for _, row := range rows {
		if !row.OK() {
			failed = append(failed, row)
		}
	}
	return failed
}
