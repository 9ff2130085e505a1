package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/shinji-kodama/irishgrid/internal/gridcodec"
	"github.com/shinji-kodama/irishgrid/internal/model"
	"github.com/shinji-kodama/irishgrid/internal/projection"
)

// DecodeGridRef converts a grid reference string such as "V 92315 85538"
// into absolute grid coordinates.
func DecodeGridRef(s string) (model.GridXY, error) {
	return gridcodec.Decode(s)
}

// EncodeGridRef converts absolute grid coordinates into a grid reference
// string. On failure the string is model.NotInIreland.
func EncodeGridRef(xy model.GridXY) (string, error) {
	return gridcodec.EncodeString(xy)
}

// GridXYToLatLon converts grid coordinates to WGS84, rounded to five
// decimal places.
func GridXYToLatLon(xy model.GridXY) (model.LatLon, error) {
	return projection.ToLatLon(xy)
}

// LatLonToGridXY converts WGS84 to grid coordinates truncated to whole
// metres.
func LatLonToGridXY(ll model.LatLon) (model.GridXY, error) {
	return projection.ToGridXY(ll)
}

// Convert parses fields as a coordinate of kind from and converts it to
// kind to. Any failure, including in parsing, is returned in the result
// rather than as a separate error.
//
// For KindGridRef the fields are joined with spaces, so both
// []string{"V 92315 85538"} and []string{"V", "92315", "85538"} are
// accepted. KindXY and KindLatLon take exactly two fields.
func Convert(fields []string, from, to model.Kind) model.Result {
	if !to.IsValid() {
		return model.Fail(model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, to.String(),
			"unknown target kind"))
	}

	value, err := Parse(fields, from)
	if err != nil {
		return model.Fail(model.AsConversionError(err, model.StageParse))
	}
	return ConvertValue(value, to)
}

// ConvertValue converts an already parsed coordinate to kind to.
func ConvertValue(value model.Coordinate, to model.Kind) model.Result {
	if value == nil {
		return model.Fail(model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, "", "no coordinate given"))
	}

	switch to {
	case model.KindXY:
		xy, err := toXY(value)
		if err != nil {
			return model.Fail(err)
		}
		return model.Ok(xy)

	case model.KindGridRef:
		if ref, ok := value.(model.GridReference); ok {
			return model.Ok(ref)
		}
		xy, err := toXY(value)
		if err != nil {
			return model.Fail(err)
		}
		ref, encErr := gridcodec.Encode(xy)
		if encErr != nil {
			return model.Fail(model.AsConversionError(encErr, model.StageEncode))
		}
		return model.Ok(ref)

	case model.KindLatLon:
		if ll, ok := value.(model.LatLon); ok {
			return model.Ok(ll)
		}
		xy, err := toXY(value)
		if err != nil {
			return model.Fail(err)
		}
		ll, projErr := projection.ToLatLon(xy)
		if projErr != nil {
			return model.Fail(model.AsConversionError(projErr, model.StageProject))
		}
		return model.Ok(ll)

	default:
		return model.Fail(model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, to.String(),
			"unknown target kind"))
	}
}

// toXY brings any coordinate to grid XY, the hub every conversion passes
// through.
func toXY(value model.Coordinate) (model.GridXY, *model.ConversionError) {
	switch v := value.(type) {
	case model.GridXY:
		return v, nil
	case model.GridReference:
		xy, err := gridcodec.DecodeReference(v)
		if err != nil {
			return model.GridXY{}, model.AsConversionError(err, model.StageDecode)
		}
		return xy, nil
	case model.LatLon:
		xy, err := projection.ToGridXY(v)
		if err != nil {
			return model.GridXY{}, model.AsConversionError(err, model.StageUnproject)
		}
		return xy, nil
	default:
		return model.GridXY{}, model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, value.String(),
			"unsupported coordinate type")
	}
}

// Parse turns text fields into a coordinate of the given kind.
func Parse(fields []string, kind model.Kind) (model.Coordinate, error) {
	switch kind {
	case model.KindGridRef:
		return gridcodec.Parse(strings.Join(fields, " "))
	case model.KindXY:
		if err := expectFields(fields, 2, "x y"); err != nil {
			return nil, err
		}
		return ParseGridXY(fields[0], fields[1])
	case model.KindLatLon:
		if err := expectFields(fields, 2, "lat lon"); err != nil {
			return nil, err
		}
		return ParseLatLon(fields[0], fields[1])
	default:
		return nil, model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, kind.String(),
			"unknown source kind")
	}
}

// ParseGridXY parses easting and northing text as whole metres. Leading
// zeros are allowed ("092315"); fractions and signs other than "-" are not.
func ParseGridXY(x, y string) (model.GridXY, error) {
	easting, err := parseMetres(x)
	if err != nil {
		return model.GridXY{}, err
	}
	northing, err := parseMetres(y)
	if err != nil {
		return model.GridXY{}, err
	}
	return model.GridXY{Easting: easting, Northing: northing}, nil
}

// ParseLatLon parses latitude and longitude text as decimal degrees.
// NaN and infinities are rejected.
func ParseLatLon(lat, lon string) (model.LatLon, error) {
	latV, err := parseDegrees(lat)
	if err != nil {
		return model.LatLon{}, err
	}
	lonV, err := parseDegrees(lon)
	if err != nil {
		return model.LatLon{}, err
	}
	return model.LatLon{Lat: latV, Lon: lonV}, nil
}

// SplitFields splits one line of row text into fields for the given kind.
// Grid references are kept whole. Other kinds split on commas when present
// and on whitespace otherwise, so "52.01, -9.57" and "52.01 -9.57" both
// give two fields.
func SplitFields(line string, kind model.Kind) []string {
	line = strings.TrimSpace(line)
	if kind == model.KindGridRef {
		return []string{line}
	}
	if strings.Contains(line, ",") {
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return strings.Fields(line)
}

func expectFields(fields []string, n int, layout string) error {
	if len(fields) != n {
		return model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, strings.Join(fields, " "),
			"expected %d fields (%s), got %d", n, layout, len(fields))
	}
	return nil
}

func parseMetres(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.Atoi(trimmed)
	if err != nil || strings.HasPrefix(trimmed, "+") {
		return 0, model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, s,
			"grid coordinate must be a whole number of metres")
	}
	return v, nil
}

func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, s,
			"degrees must be a finite decimal number")
	}
	return v, nil
}
