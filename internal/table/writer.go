package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// Columns are the output table headers, in order.
var Columns = []string{"grid_ref", "x", "y", "lat", "lon"}

// Cells is the display form of a row: every column as text, blank where
// the conversion failed.
type Cells struct {
	GridRef string
	X       string
	Y       string
	Lat     string
	Lon     string
}

// Cells renders the row's columns as text.
func (r Row) Cells() Cells {
	var c Cells
	if ref, ok := r.GridRef.Value.(model.GridReference); ok && r.GridRef.OK() {
		c.GridRef = ref.String()
	}
	if xy, ok := r.XY.Value.(model.GridXY); ok && r.XY.OK() {
		c.X = strconv.Itoa(xy.Easting)
		c.Y = strconv.Itoa(xy.Northing)
	}
	if ll, ok := r.LatLon.Value.(model.LatLon); ok && r.LatLon.OK() {
		c.Lat = model.FormatDegrees(ll.Lat)
		c.Lon = model.FormatDegrees(ll.Lon)
	}
	return c
}

// rowDoc is the JSON/YAML structure for one row. Failed columns are null.
type rowDoc struct {
	Row     int                    `json:"row" yaml:"row"`
	Input   string                 `json:"input" yaml:"input"`
	GridRef *string                `json:"grid_ref" yaml:"grid_ref"`
	X       *int                   `json:"x" yaml:"x"`
	Y       *int                   `json:"y" yaml:"y"`
	Lat     *float64               `json:"lat" yaml:"lat"`
	Lon     *float64               `json:"lon" yaml:"lon"`
	Error   *model.ConversionError `json:"error,omitempty" yaml:"error,omitempty"`
}

// tableDoc is the top-level JSON/YAML document.
type tableDoc struct {
	Rows []rowDoc `json:"rows" yaml:"rows"`
}

func newTableDoc(rows []Row) tableDoc {
	// An empty slice rather than nil so JSON shows [] instead of null.
	doc := tableDoc{Rows: make([]rowDoc, 0, len(rows))}
	for _, r := range rows {
		d := rowDoc{Row: r.Index, Input: r.Input, Error: r.Err()}
		if ref, ok := r.GridRef.Value.(model.GridReference); ok && r.GridRef.OK() {
			s := ref.String()
			d.GridRef = &s
		}
		if xy, ok := r.XY.Value.(model.GridXY); ok && r.XY.OK() {
			x, y := xy.Easting, xy.Northing
			d.X, d.Y = &x, &y
		}
		if ll, ok := r.LatLon.Value.(model.LatLon); ok && r.LatLon.OK() {
			lat, lon := ll.Lat, ll.Lon
			d.Lat, d.Lon = &lat, &lon
		}
		doc.Rows = append(doc.Rows, d)
	}
	return doc
}

// Write renders rows to w in the given format.
func Write(w io.Writer, rows []Row, format model.Format) error {
	switch format {
	case model.FormatText:
		return WriteText(w, rows)
	case model.FormatJSON:
		return WriteJSON(w, rows)
	case model.FormatYAML:
		return WriteYAML(w, rows)
	case model.FormatCSV:
		return WriteCSV(w, rows)
	case model.FormatGeoJSON:
		return WriteGeoJSON(w, rows)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteText renders rows as a fixed-width table. Failed cells show "-".
//
// The table format is:
//
//	ROW   GRID REF         X        Y        LAT        LON
//	1     V 92248 85324    92248    85324    52.01      -9.57
//	2     -                -        -        -          -
func WriteText(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No rows to convert.")
		return err
	}

	if _, err := fmt.Fprintf(w, "%-5s %-16s %-8s %-8s %-10s %s\n",
		"ROW", "GRID REF", "X", "Y", "LAT", "LON"); err != nil {
		return err
	}

	for _, r := range rows {
		c := r.Cells()
		if _, err := fmt.Fprintf(w, "%-5d %-16s %-8s %-8s %-10s %s\n",
			r.Index, dash(c.GridRef), dash(c.X), dash(c.Y), dash(c.Lat), dash(c.Lon)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON renders rows as an indented JSON document.
func WriteJSON(w io.Writer, rows []Row) error {
	data, err := json.MarshalIndent(newTableDoc(rows), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode rows as JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteYAML renders rows as a YAML document.
func WriteYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newTableDoc(rows)); err != nil {
		return fmt.Errorf("failed to encode rows as YAML: %w", err)
	}
	return enc.Close()
}

// WriteCSV renders rows with the output table columns. Failed cells are
// empty strings, so the file lines up with the input row for row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		c := r.Cells()
		if err := cw.Write([]string{c.GridRef, c.X, c.Y, c.Lat, c.Lon}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
