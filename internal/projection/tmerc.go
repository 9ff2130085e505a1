package projection

import "math"

// maxArcIterations bounds the latitude search in Inverse. Inside the grid
// it converges in three or four steps.
const maxArcIterations = 64

// arcTolerance is the meridional arc residual, in metres, at which the
// latitude search in Inverse stops.
const arcTolerance = 1e-5

// Forward projects a geodetic position (radians) on the projection's
// ellipsoid to grid easting and northing in metres.
func (tm TransverseMercator) Forward(lat, lon float64) (easting, northing float64) {
	a, e2 := tm.Ellipsoid.A, tm.Ellipsoid.E2()

	sinLat, cosLat, tanLat := math.Sin(lat), math.Cos(lat), math.Tan(lat)
	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2

	nu := a * tm.K0 / math.Sqrt(1-e2*sinLat*sinLat)
	rho := a * tm.K0 * (1 - e2) / math.Pow(1-e2*sinLat*sinLat, 1.5)
	eta2 := nu/rho - 1

	m := tm.meridionalArc(lat)

	cos3 := cosLat * cosLat * cosLat
	cos5 := cos3 * cosLat * cosLat

	i := m + tm.FalseNorthing
	ii := nu / 2 * sinLat * cosLat
	iii := nu / 24 * sinLat * cos3 * (5 - tan2 + 9*eta2)
	iiia := nu / 720 * sinLat * cos5 * (61 - 58*tan2 + tan4)
	iv := nu * cosLat
	v := nu / 6 * cos3 * (nu/rho - tan2)
	vi := nu / 120 * cos5 * (5 - 18*tan2 + tan4 + 14*eta2 - 58*tan2*eta2)

	dl := lon - tm.Lon0
	dl2 := dl * dl
	dl3 := dl2 * dl
	dl4 := dl3 * dl
	dl5 := dl4 * dl
	dl6 := dl5 * dl

	northing = i + ii*dl2 + iii*dl4 + iiia*dl6
	easting = tm.FalseEasting + iv*dl + v*dl3 + vi*dl5
	return easting, northing
}

// Inverse converts grid easting and northing in metres to a geodetic
// position (radians) on the projection's ellipsoid. It returns NaN values
// if the latitude search does not converge.
func (tm TransverseMercator) Inverse(easting, northing float64) (lat, lon float64) {
	a, e2 := tm.Ellipsoid.A, tm.Ellipsoid.E2()

	// Find the footpoint latitude whose meridional arc matches the northing.
	lat = tm.Lat0
	m := 0.0
	converged := false
	for n := 0; n < maxArcIterations; n++ {
		lat += (northing - tm.FalseNorthing - m) / (a * tm.K0)
		m = tm.meridionalArc(lat)
		if math.Abs(northing-tm.FalseNorthing-m) < arcTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return math.NaN(), math.NaN()
	}

	sinLat, cosLat, tanLat := math.Sin(lat), math.Cos(lat), math.Tan(lat)
	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2

	nu := a * tm.K0 / math.Sqrt(1-e2*sinLat*sinLat)
	rho := a * tm.K0 * (1 - e2) / math.Pow(1-e2*sinLat*sinLat, 1.5)
	eta2 := nu/rho - 1

	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	vii := tanLat / (2 * rho * nu)
	viii := tanLat / (24 * rho * nu3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	ix := tanLat / (720 * rho * nu5) * (61 + 90*tan2 + 45*tan4)
	x := 1 / (cosLat * nu)
	xi := 1 / (cosLat * 6 * nu3) * (nu/rho + 2*tan2)
	xii := 1 / (cosLat * 120 * nu5) * (5 + 28*tan2 + 24*tan4)
	xiia := 1 / (cosLat * 5040 * nu7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	de := easting - tm.FalseEasting
	de2 := de * de
	de3 := de2 * de
	de4 := de3 * de
	de5 := de4 * de
	de6 := de5 * de
	de7 := de6 * de

	lat = lat - vii*de2 + viii*de4 - ix*de6
	lon = tm.Lon0 + x*de - xi*de3 + xii*de5 - xiia*de7
	return lat, lon
}

// meridionalArc returns the scaled meridional arc length from Lat0 to lat.
func (tm TransverseMercator) meridionalArc(lat float64) float64 {
	a, b := tm.Ellipsoid.A, tm.Ellipsoid.B()
	n := (a - b) / (a + b)
	n2 := n * n
	n3 := n2 * n

	dLat := lat - tm.Lat0
	sLat := lat + tm.Lat0

	return b * tm.K0 * ((1+n+5.0/4*n2+5.0/4*n3)*dLat -
		(3*n+3*n2+21.0/8*n3)*math.Sin(dLat)*math.Cos(sLat) +
		(15.0/8*n2+15.0/8*n3)*math.Sin(2*dLat)*math.Cos(2*sLat) -
		35.0/24*n3*math.Sin(3*dLat)*math.Cos(3*sLat))
}
