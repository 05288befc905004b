package crsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProjectionDefaultsUTM(t *testing.T) {
	p := NewParams()
	p.ProjName = "utm"
	p.Zone = intp(15)
	p.applyProjectionDefaults()

	require.NotNil(t, p.Long0)
	assert.InDelta(t, -93*d2r, *p.Long0, 1e-9)
	assert.Equal(t, 0.9996, p.K0)
	assert.Equal(t, 500000.0, p.X0)
	assert.Equal(t, 0.0, p.Y0)
}

func TestApplyProjectionDefaultsUTMSouth(t *testing.T) {
	p := NewParams()
	p.ProjName = "utm"
	p.Zone = intp(33)
	p.UtmSouth = true
	p.applyProjectionDefaults()
	assert.Equal(t, 10000000.0, p.Y0)
}

func TestApplyProjectionDefaultsStereVariantB(t *testing.T) {
	p := NewParams()
	p.ProjName = "stere"
	p.Lat1 = f64p(-71 * d2r)
	p.applyProjectionDefaults()

	require.NotNil(t, p.Lat0)
	assert.InDelta(t, -halfPi, *p.Lat0, 1e-12)
	require.NotNil(t, p.LatTs)
	assert.Nil(t, p.Lat1)
}

func TestApplyProjectionDefaultsStereVariantA(t *testing.T) {
	p := NewParams()
	p.ProjName = "stere"
	p.Lat0 = f64p(halfPi)
	p.applyProjectionDefaults()

	require.NotNil(t, p.LatTs)
	assert.Equal(t, halfPi, *p.LatTs)
}

func TestApplyProjectionDefaultsAEACopiesLongc(t *testing.T) {
	p := NewParams()
	p.ProjName = "aea"
	p.Longc = f64p(0.5)
	p.applyProjectionDefaults()
	require.NotNil(t, p.Long0)
	assert.Equal(t, 0.5, *p.Long0)
}

func TestDeriveEllipsoidFromParamsNamed(t *testing.T) {
	p := NewParams()
	p.Ellps = "clrk66"
	e := p.deriveEllipsoidFromParams()
	assert.InDelta(t, 6378206.4, e.A, 1e-6)
	assert.InDelta(t, 6356583.8, e.B, 1e-6)
}

func TestDeriveEllipsoidFromParamsExplicit(t *testing.T) {
	p := NewParams()
	p.A = f64p(6378137.0)
	p.Rf = f64p(298.257223563)
	e := p.deriveEllipsoidFromParams()
	assert.InDelta(t, 6378137.0, e.A, 1e-6)
	assert.False(t, e.IsSphere)
}

func TestDeriveEllipsoidSphereFlag(t *testing.T) {
	p := NewParams()
	p.Ellps = "WGS84"
	p.SphereFlag = true
	e := p.deriveEllipsoidFromParams()
	assert.True(t, e.IsSphere)
	assert.Equal(t, e.A, e.B)
}

func TestResolveUnit(t *testing.T) {
	p := NewParams()
	assert.Equal(t, 1.0, p.resolveUnit())

	p.Units = "km"
	assert.Equal(t, 1000.0, p.resolveUnit())

	p.ToMeter = f64p(2.5)
	assert.Equal(t, 2.5, p.resolveUnit())
}

func TestDeriveDatumNamed(t *testing.T) {
	p := NewParams()
	p.DatumCode = "NAD27"
	d := p.deriveDatum()
	assert.Equal(t, DatumGridShift, d.Kind)
	require.NotEmpty(t, d.Nadgrids)
}

func TestDeriveDatumNone(t *testing.T) {
	p := NewParams()
	p.DatumCode = "none"
	d := p.deriveDatum()
	assert.Equal(t, DatumNone, d.Kind)
}

func TestParseDegreeString(t *testing.T) {
	assert.InDelta(t, -9.131906, parseDegreeString(`9d07'54.862"W`), 1e-6)
	assert.InDelta(t, 2.337229, parseDegreeString(`2d20'14.025"E`), 1e-6)
}
