// Package cli: nearest.go implements the "irishgrid nearest" command.
//
// The nearest command takes a device location and a set of marker rows,
// converts the markers to latitude/longitude, and reports which marker is
// closest. Markers whose conversion fails are skipped.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/irishgrid/internal/locate"
	"github.com/shinji-kodama/irishgrid/internal/model"
	"github.com/shinji-kodama/irishgrid/internal/table"
)

// nearestFlags holds the flag values for the nearest command.
type nearestFlags struct {
	rowFlags

	lat      float64
	lon      float64
	accuracy float64
}

// nearestOutput is the JSON shape printed with --json.
type nearestOutput struct {
	Location model.LatLon   `json:"location"`
	Accuracy float64        `json:"accuracy_meters"`
	Markers  int            `json:"markers"`
	Nearest  *nearestMarker `json:"nearest"`
}

// nearestMarker is the matched marker in JSON output.
type nearestMarker struct {
	Row     int          `json:"row"`
	Name    string       `json:"name"`
	LatLon  model.LatLon `json:"latlon"`
	GridRef string       `json:"grid_ref"`
	Meters  float64      `json:"meters"`
}

// NewNearestCommand creates the "nearest" cobra command.
func NewNearestCommand() *cobra.Command {
	flags := &nearestFlags{}

	cmd := &cobra.Command{
		Use:   "nearest --lat LAT --lon LON [rows...]",
		Short: "Find the marker row closest to a location",
		Long: `Find the marker row closest to a location.

Marker rows are read the same way as for convert and converted to
latitude/longitude. The location is rounded to five decimal places.

Examples:
  irishgrid nearest --lat 52.01 --lon -9.57 --from gridref "V 92315 85538" "N 15904 34671"
  irishgrid nearest --lat 53.35 --lon -6.26 --accuracy 25 --file markers.csv`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runNearest(cmd, flags, args)
		},
	}

	bindRowFlags(cmd, &flags.rowFlags)
	cmd.Flags().Float64Var(&flags.lat, "lat", 0, "Latitude of the location (required)")
	cmd.Flags().Float64Var(&flags.lon, "lon", 0, "Longitude of the location (required)")
	cmd.Flags().Float64Var(&flags.accuracy, "accuracy", 0, "Reported accuracy of the location in meters")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

// runNearest is the main logic function for the nearest command.
func runNearest(cmd *cobra.Command, flags *nearestFlags, args []string) error {
	if !isFinite(flags.lat) || !isFinite(flags.lon) {
		return model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("--lat and --lon must be finite numbers, got %g, %g", flags.lat, flags.lon))
	}
	if flags.accuracy < 0 || !isFinite(flags.accuracy) {
		return model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("--accuracy must be a finite, non-negative number, got %g", flags.accuracy))
	}

	s, err := loadSettings(cmd, &flags.rowFlags)
	if err != nil {
		return err
	}

	inputs, err := readRows(cmd, args, flags.file, s.kind)
	if err != nil {
		return err
	}

	rows := table.ConvertRows(inputs, s.kind, s.workers)
	logFailures(rows)

	location := locate.SnapClick(flags.lat, flags.lon)
	markerRows, markers := markerPositions(rows)
	VerboseLog("Comparing %d of %d rows as markers", len(markers), len(rows))

	match, found := locate.Nearest(location, markers)

	out := nearestOutput{Location: location, Accuracy: flags.accuracy, Markers: len(markers)}
	if found {
		row := markerRows[match.Index]
		out.Nearest = &nearestMarker{
			Row:     row.Index,
			Name:    fmt.Sprintf("Marker %d", row.Index),
			LatLon:  match.Marker,
			GridRef: row.Cells().GridRef,
			Meters:  match.Meters,
		}
	}

	if IsJSONOutput() {
		return writeNearestJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, locate.Describe(location, flags.accuracy))
	if out.Nearest == nil {
		fmt.Fprintln(w, "No markers could be converted.")
		return nil
	}
	fmt.Fprintln(w, locate.DescribeMatch(out.Nearest.Row, match))
	return nil
}

// markerPositions returns the rows whose lat/lon converted, alongside
// their positions in the same order.
func markerPositions(rows []table.Row) ([]table.Row, []model.LatLon) {
	var kept []table.Row
	var markers []model.LatLon
	for _, row := range rows {
		res := row.Column(model.KindLatLon)
		if !res.OK() {
			continue
		}
		ll, ok := res.Value.(model.LatLon)
		if !ok {
			continue
		}
		kept = append(kept, row)
		markers = append(markers, ll)
	}
	return kept, markers
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// writeNearestJSON prints out as indented JSON.
func writeNearestJSON(w io.Writer, out nearestOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to marshal JSON output", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
