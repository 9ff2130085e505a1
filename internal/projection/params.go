package projection

import "math"

// Ellipsoid describes a reference ellipsoid by its semi-major axis and
// inverse flattening.
type Ellipsoid struct {
	// A is the semi-major axis in metres.
	A float64

	// InvF is the inverse flattening 1/f.
	InvF float64
}

// B returns the semi-minor axis in metres.
func (e Ellipsoid) B() float64 {
	return e.A * (1 - 1/e.InvF)
}

// E2 returns the first eccentricity squared.
func (e Ellipsoid) E2() float64 {
	f := 1 / e.InvF
	return f * (2 - f)
}

var (
	// AiryModified is the Airy Modified 1849 ellipsoid used by TM75.
	AiryModified = Ellipsoid{A: 6377340.189, InvF: 299.3249646}

	// WGS84 is the World Geodetic System 1984 ellipsoid.
	WGS84 = Ellipsoid{A: 6378137.0, InvF: 298.257223563}
)

// TransverseMercator holds the parameters of a transverse Mercator grid.
type TransverseMercator struct {
	Ellipsoid Ellipsoid

	// Lat0 and Lon0 are the true origin in radians.
	Lat0 float64
	Lon0 float64

	// K0 is the scale factor on the central meridian.
	K0 float64

	// FalseEasting and FalseNorthing are the grid coordinates of the true
	// origin in metres.
	FalseEasting  float64
	FalseNorthing float64
}

// IrishGrid is the TM75 / Irish Grid projection (EPSG:29903).
var IrishGrid = TransverseMercator{
	Ellipsoid:     AiryModified,
	Lat0:          53.5 * math.Pi / 180,
	Lon0:          -8.0 * math.Pi / 180,
	K0:            1.000035,
	FalseEasting:  200000,
	FalseNorthing: 250000,
}

// arcSecond is one second of arc in radians.
const arcSecond = math.Pi / (180 * 3600)

// Helmert holds a 7-parameter similarity transform using the position
// vector rotation convention.
type Helmert struct {
	// Tx, Ty, Tz are translations in metres.
	Tx, Ty, Tz float64

	// Rx, Ry, Rz are rotations in radians.
	Rx, Ry, Rz float64

	// S is the scale change (unitless, e.g. 8.15e-6 for 8.15 ppm).
	S float64
}

// TM75ToWGS84 is the datum shift from TM75 to WGS84 applied by EPSG:29903.
// EPSG publishes the rotations as +1.042, +0.214, +0.631 arc-seconds in the
// coordinate frame convention; in position vector form they are negated
// (PROJ +towgs84=482.5,-130.6,564.6,-1.042,-0.214,-0.631,8.15).
var TM75ToWGS84 = Helmert{
	Tx: 482.5, Ty: -130.6, Tz: 564.6,
	Rx: -1.042 * arcSecond, Ry: -0.214 * arcSecond, Rz: -0.631 * arcSecond,
	S: 8.15e-6,
}
