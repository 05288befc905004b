package crsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProjCRS(t *testing.T, configure func(p *Params)) *CRS {
	t.Helper()
	p := NewParams()
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	configure(p)
	crs, err := BuildCRS(p)
	require.NoError(t, err)
	return crs
}

func assertProjRoundTrip(t *testing.T, crs *CRS, lam, phi float64) {
	t.Helper()
	x, y, err := crs.Proj.Forward(lam, phi)
	require.NoError(t, err)
	lam2, phi2, err := crs.Proj.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, lam, lam2, 1e-8)
	assert.InDelta(t, phi, phi2, 1e-8)
}

func TestTransverseMercatorRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "tmerc"
		p.Long0 = f64p(9 * d2r)
		p.K0 = 0.9996
		p.X0 = 500000
	})
	assertProjRoundTrip(t, crs, 10*d2r, 52*d2r)
}

func TestAlbersEqualAreaRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "aea"
		p.Lat1 = f64p(29.5 * d2r)
		p.Lat2 = f64p(45.5 * d2r)
		p.Lat0 = f64p(23 * d2r)
		p.Long0 = f64p(-96 * d2r)
	})
	assertProjRoundTrip(t, crs, -100*d2r, 37*d2r)
}

func TestAlbersEqualAreaSingleParallelIsValid(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "aea"
		p.Lat1 = f64p(30 * d2r)
		p.Long0 = f64p(0)
	})
	assertProjRoundTrip(t, crs, 5*d2r, 31*d2r)
}

func TestLambertAzimuthalEqualAreaRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "laea"
		p.Lat0 = f64p(52 * d2r)
		p.Long0 = f64p(10 * d2r)
	})
	assertProjRoundTrip(t, crs, 12*d2r, 50*d2r)
}

func TestLambertAzimuthalEqualAreaPolarRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "laea"
		p.Lat0 = f64p(halfPi)
		p.Long0 = f64p(0)
	})
	assertProjRoundTrip(t, crs, 30*d2r, 80*d2r)
}

func TestLambertAzimuthalEqualAreaAntipodalFails(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "laea"
		p.Lat0 = f64p(0)
		p.Long0 = f64p(0)
	})
	_, _, err := crs.Proj.Forward(halfPi*2, 0)
	require.Error(t, err)
	var de *DomainError
	require.ErrorAs(t, err, &de)
}

func TestEquidistantConicRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "eqdc"
		p.Lat1 = f64p(55 * d2r)
		p.Lat2 = f64p(60 * d2r)
		p.Lat0 = f64p(50 * d2r)
		p.Long0 = f64p(10 * d2r)
	})
	assertProjRoundTrip(t, crs, 15*d2r, 58*d2r)
}

func TestMollweideRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "moll"
		p.Long0 = f64p(0)
	})
	assertProjRoundTrip(t, crs, 45*d2r, 35*d2r)
}

func TestSinusoidalRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "sinu"
		p.Long0 = f64p(0)
	})
	assertProjRoundTrip(t, crs, 40*d2r, -20*d2r)
}

func TestSinusoidalNearPoleClampsLongitude(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "sinu"
		p.Long0 = f64p(0)
	})
	x, y, err := crs.Proj.Forward(0, halfPi)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-9)
	lam, phi, err := crs.Proj.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0, lam, 1e-9)
	assert.InDelta(t, halfPi, phi, 1e-6)
}

func TestObliqueMercatorRoundTrip(t *testing.T) {
	crs := buildProjCRS(t, func(p *Params) {
		p.ProjName = "omerc"
		p.Lat0 = f64p(4 * d2r)
		p.Longc = f64p(115 * d2r)
		p.Alpha = f64p(53.13 * d2r)
		p.K0 = 0.99984
		p.X0 = 0
		p.Y0 = 0
	})
	x, y, err := crs.Proj.Forward(115.5*d2r, 5*d2r)
	require.NoError(t, err)
	lam, phi, err := crs.Proj.Inverse(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 115.5*d2r, lam, 1e-6)
	assert.InDelta(t, 5*d2r, phi, 1e-6)
}
