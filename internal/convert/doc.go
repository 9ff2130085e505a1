// Package convert is the any-to-any conversion facade over the grid
// reference codec and the geodetic projector.
//
// It normalizes text input (as typed into a table editor) into coordinate
// values, routes grid reference ⇄ grid XY ⇄ latitude/longitude through the
// two leaf packages, and turns every failure into a *model.ConversionError
// tagged with the stage that failed. It never panics on bad input and never
// mutates caller data; each call returns a fresh result.
package convert
