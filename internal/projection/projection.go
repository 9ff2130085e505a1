package projection

import (
	"math"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// Decimals is the number of decimal places ToLatLon rounds to, about 1.1 m
// of latitude.
const Decimals = 5

// degreesPerRadian converts radians to degrees.
const degreesPerRadian = 180 / math.Pi

// ToLatLon converts Irish Grid coordinates to WGS84 latitude/longitude,
// rounded to Decimals places.
//
// Input far outside the grid still produces a position; only non-finite
// intermediate results are reported, as a *model.ConversionError of kind
// ErrKindOutOfRange.
func ToLatLon(xy model.GridXY) (model.LatLon, error) {
	lat, lon := toWGS84(float64(xy.Easting), float64(xy.Northing))
	if !isFinite(lat) || !isFinite(lon) {
		return model.LatLon{}, model.NewConversionError(
			model.ErrKindOutOfRange, model.StageProject, xy.String(),
			"grid coordinates do not map to a finite latitude/longitude")
	}
	return model.LatLon{Lat: Round(lat), Lon: Round(lon)}, nil
}

// ToGridXY converts a WGS84 latitude/longitude to Irish Grid coordinates,
// truncating toward zero to whole metres.
//
// Positions south or west of the false origin yield negative values; they
// are returned as-is and left for the grid reference encoder to reject.
func ToGridXY(ll model.LatLon) (model.GridXY, error) {
	if !isFinite(ll.Lat) || !isFinite(ll.Lon) {
		return model.GridXY{}, model.NewConversionError(
			model.ErrKindMalformedInput, model.StageUnproject, ll.String(),
			"latitude/longitude must be finite numbers")
	}

	easting, northing := fromWGS84(ll.Lat, ll.Lon)
	if !isFinite(easting) || !isFinite(northing) ||
		math.Abs(easting) > math.MaxInt32 || math.Abs(northing) > math.MaxInt32 {
		return model.GridXY{}, model.NewConversionError(
			model.ErrKindOutOfRange, model.StageUnproject, ll.String(),
			"latitude/longitude does not map to finite grid coordinates")
	}
	return model.GridXY{Easting: int(easting), Northing: int(northing)}, nil
}

// toWGS84 returns unrounded WGS84 degrees for grid metres.
func toWGS84(easting, northing float64) (lat, lon float64) {
	phi, lambda := IrishGrid.Inverse(easting, northing)
	x, y, z := toGeocentric(IrishGrid.Ellipsoid, phi, lambda)
	x, y, z = TM75ToWGS84.Apply(x, y, z)
	phi, lambda = fromGeocentric(WGS84, x, y, z)
	return phi * degreesPerRadian, lambda * degreesPerRadian
}

// fromWGS84 returns unrounded grid metres for WGS84 degrees.
func fromWGS84(lat, lon float64) (easting, northing float64) {
	x, y, z := toGeocentric(WGS84, lat/degreesPerRadian, lon/degreesPerRadian)
	x, y, z = TM75ToWGS84.Invert(x, y, z)
	phi, lambda := fromGeocentric(IrishGrid.Ellipsoid, x, y, z)
	return IrishGrid.Forward(phi, lambda)
}

// Round rounds a degree value to Decimals places.
func Round(v float64) float64 {
	scale := math.Pow(10, Decimals)
	return math.Round(v*scale) / scale
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
