// Package model defines the coordinate types for the irishgrid converter.
//
// All coordinate types are plain values. GridCodec and the geodetic projector
// each take one of them and produce another, with no shared mutable state.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the three coordinate representations the converter
// understands. It is used to tell the facade what an input row contains and
// what it should be turned into.
type Kind string

const (
	// KindGridRef is an Irish Grid reference, e.g. "V 92315 85538".
	KindGridRef Kind = "gridref"

	// KindXY is an absolute Irish Grid easting/northing pair in metres,
	// e.g. (92315, 85538).
	KindXY Kind = "xy"

	// KindLatLon is a WGS84 latitude/longitude pair in degrees,
	// e.g. (52.01, -9.57).
	KindLatLon Kind = "latlon"
)

// Kinds lists every valid Kind in the column order of the output table.
var Kinds = []Kind{KindGridRef, KindXY, KindLatLon}

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks whether the Kind value is one of the predefined kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindGridRef, KindXY, KindLatLon:
		return true
	default:
		return false
	}
}

// ParseKind converts a string to a Kind. Matching is case-insensitive and
// "grid_ref" is accepted as an alias for "gridref".
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "grid_ref" {
		normalized = string(KindGridRef)
	}
	kind := Kind(normalized)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid coordinate kind: %q (valid: gridref, xy, latlon)", s)
	}
	return kind, nil
}

// Coordinate is implemented by every coordinate value type. It lets a
// conversion result carry whichever representation was requested.
type Coordinate interface {
	// Kind reports which representation the value is.
	Kind() Kind

	// String renders the value in its canonical text form.
	String() string
}

// NotInIreland is the display text used when a point cannot be expressed
// as an Irish Grid reference.
const NotInIreland = "Not in IRE"

// GridReference is the human-readable Irish Grid form: a square letter plus
// easting and northing digit strings measured from the south-west corner of
// that 100 km square.
type GridReference struct {
	// Letter is the uppercase square letter. "I" is never used.
	Letter string `json:"letter" yaml:"letter"`

	// Easting is the easting digit string within the square.
	Easting string `json:"easting" yaml:"easting"`

	// Northing is the northing digit string within the square.
	Northing string `json:"northing" yaml:"northing"`
}

// Kind returns KindGridRef.
func (g GridReference) Kind() Kind { return KindGridRef }

// String returns the reference as "<LETTER> <easting> <northing>".
func (g GridReference) String() string {
	return fmt.Sprintf("%s %s %s", g.Letter, g.Easting, g.Northing)
}

// GridXY is an absolute Irish Grid (EPSG:29903) coordinate in whole metres
// from the false origin.
//
// The fields are signed because the inverse projection of a point south or
// west of the false origin yields negative values. Such values are not
// representable as a grid reference and are rejected by the encoder.
type GridXY struct {
	Easting  int `json:"x" yaml:"x"`
	Northing int `json:"y" yaml:"y"`
}

// Kind returns KindXY.
func (xy GridXY) Kind() Kind { return KindXY }

// String returns the pair as "<easting> <northing>".
func (xy GridXY) String() string {
	return strconv.Itoa(xy.Easting) + " " + strconv.Itoa(xy.Northing)
}

// LatLon is a WGS84 (EPSG:4326) position in decimal degrees.
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Kind returns KindLatLon.
func (ll LatLon) Kind() Kind { return KindLatLon }

// String returns the pair as "<lat>, <lon>" using the shortest decimal form.
func (ll LatLon) String() string {
	return FormatDegrees(ll.Lat) + ", " + FormatDegrees(ll.Lon)
}

// FormatDegrees renders a degree value with the fewest digits that
// round-trip, so 52.01 prints as "52.01" rather than "52.010000".
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format is an output rendering for converted rows.
type Format string

const (
	// FormatText is a fixed-width table for terminals.
	FormatText Format = "text"

	// FormatJSON is a JSON document with one object per row.
	FormatJSON Format = "json"

	// FormatYAML is a YAML document with one mapping per row.
	FormatYAML Format = "yaml"

	// FormatCSV mirrors the output table as comma-separated values.
	FormatCSV Format = "csv"

	// FormatGeoJSON is a FeatureCollection of point markers, ready to drop
	// onto a web map.
	FormatGeoJSON Format = "geojson"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format value is one of the predefined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatCSV, FormatGeoJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format (case-insensitive).
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml, csv, geojson)", s)
	}
	return format, nil
}
