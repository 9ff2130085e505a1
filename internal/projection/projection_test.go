package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// degreeTolerance allows for one unit of rounding at Decimals places plus
// the up-to-one-metre loss from truncating grid coordinates.
const degreeTolerance = 2e-5

// TestToLatLon checks grid-to-WGS84 conversion against reference values.
func TestToLatLon(t *testing.T) {
	tests := []struct {
		name     string
		xy       model.GridXY
		expected model.LatLon
	}{
		{"Kerry example", model.GridXY{Easting: 92315, Northing: 85538}, model.LatLon{Lat: 52.01193, Lon: -9.5691}},
		{"false origin offset", model.GridXY{Easting: 200000, Northing: 250000}, model.LatLon{Lat: 53.50021, Lon: -8.00074}},
		{"grid origin", model.GridXY{Easting: 0, Northing: 0}, model.LatLon{Lat: 51.21857, Lon: -10.86344}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ll, err := ToLatLon(tt.xy)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.Lat, ll.Lat, 1e-9)
			assert.InDelta(t, tt.expected.Lon, ll.Lon, 1e-9)
		})
	}
}

// TestPublishedReference checks both directions against the Ordnance Survey
// Ireland published position of the Spire of Dublin (Irish Grid 315904,
// 234671; WGS84 53.34980, -6.26031). A 7-parameter shift is good to a few
// metres, so the tolerance is about 10 m.
func TestPublishedReference(t *testing.T) {
	grid := model.GridXY{Easting: 315904, Northing: 234671}
	wgs := model.LatLon{Lat: 53.34980, Lon: -6.26031}

	ll, err := ToLatLon(grid)
	require.NoError(t, err)
	assert.InDelta(t, wgs.Lat, ll.Lat, 1e-4)
	assert.InDelta(t, wgs.Lon, ll.Lon, 1.5e-4)

	xy, err := ToGridXY(wgs)
	require.NoError(t, err)
	assert.InDelta(t, grid.Easting, xy.Easting, 10)
	assert.InDelta(t, grid.Northing, xy.Northing, 10)
}

// TestToLatLon_Rounded verifies results carry at most five decimal places.
func TestToLatLon_Rounded(t *testing.T) {
	ll, err := ToLatLon(model.GridXY{Easting: 315904, Northing: 234671})
	require.NoError(t, err)
	assert.Equal(t, Round(ll.Lat), ll.Lat)
	assert.Equal(t, Round(ll.Lon), ll.Lon)
}

// TestToGridXY checks WGS84-to-grid conversion and truncation.
func TestToGridXY(t *testing.T) {
	tests := []struct {
		name     string
		ll       model.LatLon
		expected model.GridXY
	}{
		{"Kerry example", model.LatLon{Lat: 52.01, Lon: -9.57}, model.GridXY{Easting: 92248, Northing: 85324}},
		{"Cork", model.LatLon{Lat: 51.8985, Lon: -8.4756}, model.GridXY{Easting: 167311, Northing: 71861}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xy, err := ToGridXY(tt.ll)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, xy)
		})
	}
}

// TestToGridXY_Negative verifies that points west of the grid come back as
// signed values rather than an error.
func TestToGridXY_Negative(t *testing.T) {
	xy, err := ToGridXY(model.LatLon{Lat: 51.0, Lon: -12.0})
	require.NoError(t, err)
	assert.Less(t, xy.Easting, 0)
	assert.Less(t, xy.Northing, 0)
}

// TestToGridXY_NonFinite verifies non-finite input is a typed failure,
// never a panic.
func TestToGridXY_NonFinite(t *testing.T) {
	_, err := ToGridXY(model.LatLon{Lat: math.NaN(), Lon: -8})
	assert.ErrorIs(t, err, model.ErrMalformedInput)

	_, err = ToGridXY(model.LatLon{Lat: 53, Lon: math.Inf(-1)})
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

// TestToGridXY_Pole verifies latitude is not range checked: the pole maps to
// a finite northing far above the grid.
func TestToGridXY_Pole(t *testing.T) {
	xy, err := ToGridXY(model.LatLon{Lat: 90, Lon: -8})
	require.NoError(t, err)
	assert.Greater(t, xy.Northing, 4000000)
}

// TestRoundTrip_LatLon checks that WGS84 → grid → WGS84 stays within the
// rounding tolerance for points across Ireland.
func TestRoundTrip_LatLon(t *testing.T) {
	points := []model.LatLon{
		{Lat: 52.01, Lon: -9.57},       // Kerry
		{Lat: 53.34981, Lon: -6.26031}, // Dublin
		{Lat: 54.5973, Lon: -5.9301},   // Belfast
		{Lat: 51.8985, Lon: -8.4756},   // Cork
		{Lat: 55.3833, Lon: -7.3833},   // Malin Head
		{Lat: 53.2707, Lon: -9.0568},   // Galway
	}

	for _, p := range points {
		t.Run(p.String(), func(t *testing.T) {
			xy, err := ToGridXY(p)
			require.NoError(t, err)

			back, err := ToLatLon(xy)
			require.NoError(t, err)
			assert.InDelta(t, p.Lat, back.Lat, degreeTolerance)
			assert.InDelta(t, p.Lon, back.Lon, degreeTolerance)
		})
	}
}

// TestRoundTrip_Grid checks that unrounded grid → WGS84 → grid recovers the
// original metres to well under a millimetre.
func TestRoundTrip_Grid(t *testing.T) {
	for _, e := range []float64{0, 92315, 200000, 333855, 499999} {
		for _, n := range []float64{0, 85538, 250000, 374108, 499999} {
			lat, lon := toWGS84(e, n)
			gotE, gotN := fromWGS84(lat, lon)
			assert.InDelta(t, e, gotE, 1e-2)
			assert.InDelta(t, n, gotN, 1e-2)
		}
	}
}

// TestHelmert_Invert verifies the exact inverse of the datum shift.
func TestHelmert_Invert(t *testing.T) {
	x, y, z := toGeocentric(AiryModified, 53.5*math.Pi/180, -8*math.Pi/180)
	sx, sy, sz := TM75ToWGS84.Apply(x, y, z)
	bx, by, bz := TM75ToWGS84.Invert(sx, sy, sz)

	assert.InDelta(t, x, bx, 1e-6)
	assert.InDelta(t, y, by, 1e-6)
	assert.InDelta(t, z, bz, 1e-6)
}

// TestTransverseMercator_Origin verifies the true origin projects onto the
// false easting and northing.
func TestTransverseMercator_Origin(t *testing.T) {
	e, n := IrishGrid.Forward(IrishGrid.Lat0, IrishGrid.Lon0)
	assert.InDelta(t, IrishGrid.FalseEasting, e, 1e-6)
	assert.InDelta(t, IrishGrid.FalseNorthing, n, 1e-6)

	lat, lon := IrishGrid.Inverse(IrishGrid.FalseEasting, IrishGrid.FalseNorthing)
	assert.InDelta(t, IrishGrid.Lat0, lat, 1e-12)
	assert.InDelta(t, IrishGrid.Lon0, lon, 1e-12)
}

// TestEllipsoid checks derived ellipsoid constants.
func TestEllipsoid(t *testing.T) {
	assert.InDelta(t, 6356034.447, AiryModified.B(), 1e-2)
	assert.InDelta(t, 0.00669438, WGS84.E2(), 1e-8)
}

// TestRound verifies rounding to five decimal places.
func TestRound(t *testing.T) {
	assert.Equal(t, 52.01193, Round(52.0119308301))
	assert.Equal(t, -9.5691, Round(-9.5691046155))
	assert.Equal(t, 0.0, Round(0.000004))
}
