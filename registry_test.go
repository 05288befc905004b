package crsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	ctx := NewContext()

	wgs84, err := ctx.Get("EPSG:4326")
	require.NoError(t, err)
	assert.True(t, wgs84.IsLongLat())

	alias, err := ctx.Get("WGS84")
	require.NoError(t, err)
	assert.Same(t, wgs84, alias)

	webMerc, err := ctx.Get("EPSG:3857")
	require.NoError(t, err)
	assert.Equal(t, "merc", webMerc.Params.ProjName)

	googleAlias, err := ctx.Get("GOOGLE")
	require.NoError(t, err)
	assert.Same(t, webMerc, googleAlias)

	utm15n, err := ctx.Get("EPSG:32615")
	require.NoError(t, err)
	assert.Equal(t, "utm", utm15n.Params.ProjName)

	ups, err := ctx.Get("EPSG:5041")
	require.NoError(t, err)
	assert.Equal(t, "stere", ups.Params.ProjName)
}

func TestRegistryUnknownCodeNoFetch(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Get("EPSG:999999")
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.True(t, fe.NoMatch)
}

func TestRegistryUnknownCodeNotAuthorityPattern(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Get("NOT_A_KNOWN_CODE")
	require.Error(t, err)
}

type stubFetcher struct {
	def   string
	found bool
	err   error
}

func (s stubFetcher) Fetch(code string) (string, bool, error) {
	return s.def, s.found, s.err
}

func TestRegistryFetchFallthrough(t *testing.T) {
	ctx := NewContext(WithFetchCollaborator(stubFetcher{
		def:   "+proj=longlat +ellps=WGS84 +datum=WGS84",
		found: true,
	}))

	crs, err := ctx.Get("EPSG:4999")
	require.NoError(t, err)
	assert.True(t, crs.IsLongLat())

	// A second lookup must hit the cache, not the collaborator again.
	crs2, err := ctx.Get("EPSG:4999")
	require.NoError(t, err)
	assert.Same(t, crs, crs2)
}

func TestRegistryFetchNotFound(t *testing.T) {
	ctx := NewContext(WithFetchCollaborator(stubFetcher{found: false}))
	_, err := ctx.Get("EPSG:4999")
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.True(t, fe.NoMatch)
}

func TestContextRegister(t *testing.T) {
	ctx := NewContext()
	err := ctx.Register("MYCRS", "+proj=longlat +ellps=WGS84 +datum=WGS84")
	require.NoError(t, err)

	crs, err := ctx.Get("MYCRS")
	require.NoError(t, err)
	assert.True(t, crs.IsLongLat())
}
