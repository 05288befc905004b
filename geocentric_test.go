package crsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeodeticGeocentricRoundTrip(t *testing.T) {
	const a, b, es = 6378137.0, 6356752.314245179, 0.0066943799901413165

	lam, phi, h := -93*d2r, 39*d2r, 250.0
	x, y, z := geodeticToGeocentric(lam, phi, h, a, es)
	lam2, phi2, h2 := geocentricToGeodetic(x, y, z, a, b, es)

	assert.InDelta(t, lam, lam2, 1e-12)
	assert.InDelta(t, phi, phi2, 1e-12)
	assert.InDelta(t, h, h2, 1e-6)
}

func TestGeodeticGeocentricRoundTripAtPole(t *testing.T) {
	const a, b, es = 6378137.0, 6356752.314245179, 0.0066943799901413165

	lam, phi, h := 0.0, halfPi, 0.0
	x, y, z := geodeticToGeocentric(lam, phi, h, a, es)
	_, phi2, h2 := geocentricToGeodetic(x, y, z, a, b, es)

	assert.InDelta(t, phi, phi2, 1e-9)
	assert.InDelta(t, h, h2, 1e-6)
}

func TestGeocentricWGS84ThreeParamRoundTrip(t *testing.T) {
	d := DatumRecord{Kind: DatumThreeParam, Dx: 100, Dy: -50, Dz: 25}
	x, y, z := 4000000.0, 3000000.0, 2000000.0

	sx, sy, sz := geocentricToWGS84(x, y, z, d)
	bx, by, bz := geocentricFromWGS84(sx, sy, sz, d)

	assert.InDelta(t, x, bx, 1e-9)
	assert.InDelta(t, y, by, 1e-9)
	assert.InDelta(t, z, bz, 1e-9)
}

func TestGeocentricWGS84SevenParamRoundTrip(t *testing.T) {
	d := datumFromTowgs84([]float64{1, 2, 3, 0.5, -0.5, 0.2, 10})
	x, y, z := 4000000.0, 3000000.0, 2000000.0

	sx, sy, sz := geocentricToWGS84(x, y, z, d)
	bx, by, bz := geocentricFromWGS84(sx, sy, sz, d)

	assert.InDelta(t, x, bx, 1e-6)
	assert.InDelta(t, y, by, 1e-6)
	assert.InDelta(t, z, bz, 1e-6)
}

func TestGeocentricNoDatumIsIdentity(t *testing.T) {
	d := DatumRecord{Kind: DatumNone}
	x, y, z := geocentricToWGS84(1, 2, 3, d)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 3.0, z)
}
