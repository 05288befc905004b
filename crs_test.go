package crsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCRSMissingProjNameFails(t *testing.T) {
	p := NewParams()
	_, err := BuildCRS(p)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestBuildCRSUnknownProjNameFails(t *testing.T) {
	p := NewParams()
	p.ProjName = "not_a_real_projection"
	_, err := BuildCRS(p)
	require.Error(t, err)
}

func TestIsLongLatAliases(t *testing.T) {
	for _, name := range []string{"longlat", "latlong", "latlon", "lonlat"} {
		p := NewParams()
		p.ProjName = name
		p.Ellps = "WGS84"
		p.DatumCode = "WGS84"
		crs, err := BuildCRS(p)
		require.NoError(t, err)
		assert.True(t, crs.IsLongLat(), "proj_name %q should be treated as longlat", name)
	}

	p := NewParams()
	p.ProjName = "merc"
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	crs, err := BuildCRS(p)
	require.NoError(t, err)
	assert.False(t, crs.IsLongLat())
}

func TestBuildCRSDefaultsK0WhenZero(t *testing.T) {
	p := NewParams()
	p.ProjName = "longlat"
	p.Ellps = "WGS84"
	p.DatumCode = "WGS84"
	p.K0 = 0
	crs, err := BuildCRS(p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, crs.K0)
}
