// Package model defines the value types and error classification for the
// irishgrid converter.
//
// This package contains pure data structures with no external dependencies.
// The three coordinate representations (GridReference, GridXY, LatLon) are
// immutable values constructed fresh for every conversion and discarded
// afterwards; nothing in the core caches or persists them.
//
// The package also defines ConversionError, the typed failure returned by
// every conversion step, and CLIError/ExitCode for process exit handling.
package model
