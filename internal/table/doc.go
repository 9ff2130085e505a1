// Package table implements bulk conversion of input rows and rendering of
// the resulting output table.
//
// It is the caller side of the conversion core: rows are read from command
// arguments, CSV files or stdin, converted in parallel with
// github.com/sourcegraph/conc, and written as a text table, JSON, YAML, CSV,
// or a GeoJSON FeatureCollection of map markers (github.com/paulmach/orb).
//
// A row that fails to convert never aborts its siblings. Its failed cells
// render blank (or null in JSON/YAML) and the typed error is kept alongside.
package table
