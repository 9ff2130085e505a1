package locate

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/shinji-kodama/irishgrid/internal/model"
	"github.com/shinji-kodama/irishgrid/internal/projection"
)

// earthRadiusMeters is the mean earth radius used for display distances.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in metres between a and b.
func Distance(a, b model.LatLon) float64 {
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))

	angle := s2.ChordAngleBetweenPoints(p1, p2).Angle()
	return angle.Radians() * earthRadiusMeters
}

// Match is the marker nearest to a location.
type Match struct {
	// Index is the position of the marker in the slice passed to Nearest.
	Index int

	// Marker is the matched position.
	Marker model.LatLon

	// Meters is the great-circle distance to the marker.
	Meters float64
}

// Nearest returns the marker closest to from. It returns false when no
// marker has a finite distance, which includes an empty slice and a
// non-finite from. Ties keep the earliest marker.
func Nearest(from model.LatLon, markers []model.LatLon) (Match, bool) {
	best := Match{Index: -1, Meters: math.Inf(1)}
	for i, m := range markers {
		if d := Distance(from, m); d < best.Meters {
			best = Match{Index: i, Marker: m, Meters: d}
		}
	}
	if best.Index < 0 {
		return Match{}, false
	}
	return best, true
}

// SnapClick rounds a clicked map position to the same five decimal places
// the projector produces, so a click converts like a typed row.
func SnapClick(lat, lon float64) model.LatLon {
	return model.LatLon{Lat: projection.Round(lat), Lon: projection.Round(lon)}
}

// Describe renders a device location and its reported accuracy in metres.
func Describe(location model.LatLon, accuracyMeters float64) string {
	return fmt.Sprintf("You are within %s meters of (lat,lon) = (%s,%s)",
		model.FormatDegrees(math.Round(accuracyMeters)),
		model.FormatDegrees(location.Lat), model.FormatDegrees(location.Lon))
}

// DescribeMatch renders the distance to a matched marker, labelled with
// its 1-based row number.
func DescribeMatch(row int, m Match) string {
	return fmt.Sprintf("Nearest marker is Marker %d at (%s,%s), %.0f meters away",
		row, model.FormatDegrees(m.Marker.Lat), model.FormatDegrees(m.Marker.Lon), m.Meters)
}
