package projection

import "math"

// maxLatIterations bounds the latitude refinement in fromGeocentric.
const maxLatIterations = 16

// toGeocentric converts geodetic latitude/longitude (radians, zero height)
// on ellipsoid e to earth-centred cartesian coordinates in metres.
func toGeocentric(e Ellipsoid, lat, lon float64) (x, y, z float64) {
	e2 := e.E2()
	sinLat := math.Sin(lat)
	nu := e.A / math.Sqrt(1-e2*sinLat*sinLat)
	x = nu * math.Cos(lat) * math.Cos(lon)
	y = nu * math.Cos(lat) * math.Sin(lon)
	z = (1 - e2) * nu * sinLat
	return x, y, z
}

// fromGeocentric converts earth-centred cartesian coordinates to geodetic
// latitude/longitude (radians) on ellipsoid e. Height is discarded.
func fromGeocentric(e Ellipsoid, x, y, z float64) (lat, lon float64) {
	e2 := e.E2()
	p := math.Hypot(x, y)
	lat = math.Atan2(z, p*(1-e2))
	for i := 0; i < maxLatIterations; i++ {
		sinLat := math.Sin(lat)
		nu := e.A / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*nu*sinLat, p)
		if math.Abs(next-lat) < 1e-14 {
			lat = next
			break
		}
		lat = next
	}
	return lat, math.Atan2(y, x)
}

// Apply transforms geocentric coordinates from the source datum to the
// target datum.
func (h Helmert) Apply(x, y, z float64) (float64, float64, float64) {
	s := 1 + h.S
	return h.Tx + s*(x-h.Rz*y+h.Ry*z),
		h.Ty + s*(h.Rz*x+y-h.Rx*z),
		h.Tz + s*(-h.Ry*x+h.Rx*y+z)
}

// Invert transforms geocentric coordinates from the target datum back to
// the source datum by solving the rotation matrix exactly, so that
// Invert(Apply(p)) == p up to floating point error.
func (h Helmert) Invert(x, y, z float64) (float64, float64, float64) {
	s := 1 + h.S
	bx, by, bz := (x-h.Tx)/s, (y-h.Ty)/s, (z-h.Tz)/s

	m := [3][3]float64{
		{1, -h.Rz, h.Ry},
		{h.Rz, 1, -h.Rx},
		{-h.Ry, h.Rx, 1},
	}
	det := det3(m)
	b := [3]float64{bx, by, bz}

	// Cramer's rule, one column at a time.
	var out [3]float64
	for col := 0; col < 3; col++ {
		mc := m
		for row := 0; row < 3; row++ {
			mc[row][col] = b[row]
		}
		out[col] = det3(mc) / det
	}
	return out[0], out[1], out[2]
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
