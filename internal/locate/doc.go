// Package locate holds the map-side helpers that sit next to the converter:
// snapping a clicked map position, describing a device location, and
// finding the converted marker nearest to it.
//
// Distances are great-circle metres computed with github.com/golang/geo/s2.
// They are for display only and play no part in the grid conversions.
package locate
