// Package gridcodec converts between Irish Grid references such as
// "V 92315 85538" and absolute grid coordinates such as (92315, 85538).
//
// The Irish Grid is divided into a 5x5 table of 100 km squares, each named
// by a letter (the letter I is not used). The row of a letter is the leading
// "square digit" of the northing and its column is the square digit of the
// easting, so a reference is the square letter followed by the remaining
// five digits of each axis.
//
// The codec has no dependency on the geodetic projection and performs no
// I/O. Every function is safe for concurrent use.
package gridcodec
