package table

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// Markers builds a GeoJSON FeatureCollection with one point per row that
// has a latitude/longitude. Rows without one are left out, the same way a
// map skips markers it cannot place.
//
// Each feature carries the output table columns as properties plus a
// "name" of the form "Marker <row>".
func Markers(rows []Row) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, r := range rows {
		ll, ok := r.LatLon.Value.(model.LatLon)
		if !ok || !r.LatLon.OK() {
			continue
		}

		// GeoJSON positions are [lon, lat].
		feature := geojson.NewFeature(orb.Point{ll.Lon, ll.Lat})
		feature.Properties["name"] = fmt.Sprintf("Marker %d", r.Index)
		feature.Properties["row"] = r.Index
		feature.Properties["lat"] = ll.Lat
		feature.Properties["lon"] = ll.Lon

		if ref, ok := r.GridRef.Value.(model.GridReference); ok && r.GridRef.OK() {
			feature.Properties["grid_ref"] = ref.String()
		} else {
			feature.Properties["grid_ref"] = model.NotInIreland
		}
		if xy, ok := r.XY.Value.(model.GridXY); ok && r.XY.OK() {
			feature.Properties["x"] = xy.Easting
			feature.Properties["y"] = xy.Northing
		}

		fc.Append(feature)
	}
	return fc
}

// WriteGeoJSON renders rows as an indented GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, rows []Row) error {
	data, err := json.MarshalIndent(Markers(rows), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode rows as GeoJSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
