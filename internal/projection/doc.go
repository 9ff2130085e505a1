// Package projection reprojects between Irish Grid coordinates (EPSG:29903,
// TM75 / Irish Grid) and WGS84 latitude/longitude (EPSG:4326).
//
// The forward path is:
//
//	grid XY → inverse transverse Mercator on the Airy Modified 1849 ellipsoid
//	        → geocentric XYZ → 7-parameter Helmert (TM75 → WGS84)
//	        → WGS84 geodetic latitude/longitude
//
// and the reverse path runs the same steps backwards. All parameters are
// fixed constants; nothing is read from the environment. Every function is
// pure and safe for concurrent use.
package projection
