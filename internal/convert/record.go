package convert

import (
	"strings"

	"github.com/shinji-kodama/irishgrid/internal/gridcodec"
	"github.com/shinji-kodama/irishgrid/internal/model"
	"github.com/shinji-kodama/irishgrid/internal/projection"
)

// Record holds every representation of one input row: the source value
// itself plus the two conversions derived from it. It backs the output
// table, where each column renders independently.
type Record struct {
	// Source is the kind the row was entered as.
	Source model.Kind

	// Input is the row text as given, for display and diagnostics.
	Input string

	GridRef model.Result
	XY      model.Result
	LatLon  model.Result
}

// Resolve parses fields as kind from and fills in all three columns.
//
// Grid XY is computed once and reused for the other derived column, so a
// point that projects to negative metres still shows its XY while the grid
// reference column fails with ErrKindOutOfRange.
func Resolve(fields []string, from model.Kind) Record {
	rec := Record{Source: from, Input: strings.Join(fields, " ")}

	value, err := Parse(fields, from)
	if err != nil {
		failed := model.Fail(model.AsConversionError(err, model.StageParse))
		rec.GridRef, rec.XY, rec.LatLon = failed, failed, failed
		return rec
	}

	rec.XY = ConvertValue(value, model.KindXY)

	switch v := value.(type) {
	case model.GridReference:
		rec.GridRef = model.Ok(v)
	default:
		rec.GridRef = fromXY(rec.XY, func(xy model.GridXY) (model.Coordinate, error) {
			ref, err := gridcodec.Encode(xy)
			return ref, err
		}, model.StageEncode)
	}

	switch v := value.(type) {
	case model.LatLon:
		rec.LatLon = model.Ok(v)
	default:
		rec.LatLon = fromXY(rec.XY, func(xy model.GridXY) (model.Coordinate, error) {
			ll, err := projection.ToLatLon(xy)
			return ll, err
		}, model.StageProject)
	}

	return rec
}

// fromXY derives a column from the XY column, propagating its failure.
func fromXY(xy model.Result, derive func(model.GridXY) (model.Coordinate, error), stage model.Stage) model.Result {
	if !xy.OK() {
		return xy
	}
	value, err := derive(xy.Value.(model.GridXY))
	if err != nil {
		return model.Fail(model.AsConversionError(err, stage))
	}
	return model.Ok(value)
}

// OK reports whether every column converted.
func (r Record) OK() bool {
	return r.GridRef.OK() && r.XY.OK() && r.LatLon.OK()
}

// Err returns the first failure across the columns, or nil.
func (r Record) Err() *model.ConversionError {
	for _, res := range []model.Result{r.XY, r.GridRef, r.LatLon} {
		if !res.OK() {
			return res.Err
		}
	}
	return nil
}

// Column returns the result for the given kind.
func (r Record) Column(kind model.Kind) model.Result {
	switch kind {
	case model.KindGridRef:
		return r.GridRef
	case model.KindXY:
		return r.XY
	default:
		return r.LatLon
	}
}
