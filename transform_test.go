package crsgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLongLatWGS84(t *testing.T) *CRS {
	t.Helper()
	p := NewParams()
	p.ProjName = "longlat"
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	crs, err := BuildCRS(p)
	require.NoError(t, err)
	return crs
}

func TestTransformWebMercator(t *testing.T) {
	wgs84 := buildLongLatWGS84(t)

	p := NewParams()
	p.ProjName = "merc"
	p.A = f64p(6378137.0)
	p.B = f64p(6378137.0)
	p.Lat0 = f64p(0)
	p.Long0 = f64p(0)
	p.DatumCode = "none"
	webMerc, err := BuildCRS(p)
	require.NoError(t, err)

	ctx := NewContext()

	out, err := ctx.Transform(wgs84, webMerc, Point{X: 0, Y: 0}, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, out.X, 1e-9)
	assert.InDelta(t, 0, out.Y, 1e-9)

	out, err = ctx.Transform(wgs84, webMerc, Point{X: 180, Y: 0}, true)
	require.NoError(t, err)
	assert.InDelta(t, 20037508.3427892, out.X, 1e-3)
	assert.InDelta(t, 0, out.Y, 1e-3)
}

func TestTransformUTM15N(t *testing.T) {
	wgs84 := buildLongLatWGS84(t)

	p := NewParams()
	p.ProjName = "utm"
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	p.Zone = intp(15)
	utm15, err := BuildCRS(p)
	require.NoError(t, err)

	ctx := NewContext()

	out, err := ctx.Transform(wgs84, utm15, Point{X: -96, Y: 39}, true)
	require.NoError(t, err)
	assert.InDelta(t, 500000.0, out.X, 1e-2)
	assert.InDelta(t, 4317225.81, out.Y, 1e-2)

	back, err := ctx.Transform(utm15, wgs84, out, true)
	require.NoError(t, err)
	assert.InDelta(t, -96, back.X, 1e-6)
	assert.InDelta(t, 39, back.Y, 1e-6)
}

func TestTransformLCC(t *testing.T) {
	wgs84 := buildLongLatWGS84(t)

	p := NewParams()
	p.ProjName = "lcc"
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	p.Lat1 = f64p(33 * d2r)
	p.Lat2 = f64p(45 * d2r)
	p.Lat0 = f64p(39 * d2r)
	p.Long0 = f64p(-96 * d2r)
	lccCRS, err := BuildCRS(p)
	require.NoError(t, err)

	ctx := NewContext()
	out, err := ctx.Transform(wgs84, lccCRS, Point{X: -96, Y: 39}, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, out.X, 1e-6)
	assert.InDelta(t, 0, out.Y, 1e-6)
}

func TestTransformPolarStereographic(t *testing.T) {
	wgs84 := buildLongLatWGS84(t)

	p := NewParams()
	p.ProjName = "stere"
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	p.Lat0 = f64p(90 * d2r)
	p.K0 = 0.994
	p.X0 = 2000000
	p.Y0 = 2000000
	stereCRS, err := BuildCRS(p)
	require.NoError(t, err)

	ctx := NewContext()
	out, err := ctx.Transform(wgs84, stereCRS, Point{X: 0, Y: 90}, true)
	require.NoError(t, err)
	assert.InDelta(t, 2000000.0, out.X, 1e-6)
	assert.InDelta(t, 2000000.0, out.Y, 1e-6)
}

func TestTransformMercatorAtPoleIsDomainError(t *testing.T) {
	wgs84 := buildLongLatWGS84(t)

	p := NewParams()
	p.ProjName = "merc"
	p.Ellps = "WGS84"
	p.DatumCode = "none"
	mercCRS, err := BuildCRS(p)
	require.NoError(t, err)

	ctx := NewContext()
	_, err = ctx.Transform(wgs84, mercCRS, Point{X: 0, Y: 90}, true)
	require.Error(t, err)
	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
}

func TestLCCWithCancellingParallelsFailsAtInit(t *testing.T) {
	p := NewParams()
	p.ProjName = "lcc"
	p.Ellps = "WGS84"
	p.Lat1 = f64p(33 * d2r)
	p.Lat2 = f64p(-33 * d2r)
	p.Lat0 = f64p(0)
	_, err := BuildCRS(p)
	require.Error(t, err)
	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
}

func TestNaNInputShortCircuits(t *testing.T) {
	wgs84 := buildLongLatWGS84(t)
	ctx := NewContext()
	out, err := ctx.Transform(wgs84, wgs84, Point{X: math.NaN(), Y: 0}, true)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out.X))
}
