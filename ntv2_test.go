package crsgo

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSyntheticNTv2 assembles a minimal one-subgrid NTv2 file: a 3x3 node
// grid spanning lon [-2,0] deg and lat [0,2] deg at 1 degree spacing, with
// shift values that vary linearly with node index so bilinear interpolation
// at a non-grid point is easy to hand-check.
func buildSyntheticNTv2(t *testing.T) []byte {
	t.Helper()
	order := binary.BigEndian
	buf := make([]byte, ntv2HeaderSize+ntv2SubHeaderSize+9*8)

	order.PutUint32(buf[8:12], 11) // NUM_FIELDS (record 0)
	order.PutUint32(buf[40:44], 1) // NUM_FILE (record 2): subgrid count

	sub := buf[ntv2HeaderSize : ntv2HeaderSize+ntv2SubHeaderSize]
	putRecord := func(i int, v float64) {
		order.PutUint64(sub[i*16+8:i*16+16], math.Float64bits(v))
	}
	putRecord(4, 0)    // S_LAT arcsec
	putRecord(5, 7200) // N_LAT arcsec (2 deg)
	putRecord(6, 0)    // E_LONG arcsec
	putRecord(7, 7200) // W_LONG arcsec (2 deg)
	putRecord(8, 3600) // LAT_INC arcsec (1 deg)
	putRecord(9, 3600) // LONG_INC arcsec (1 deg)

	nodes := buf[ntv2HeaderSize+ntv2SubHeaderSize:]
	idx := 0
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			dphiSec := float32(0.01 * float64(j))
			dlamSec := float32(0.02 * float64(i))
			order.PutUint32(nodes[idx*8:idx*8+4], math.Float32bits(dphiSec))
			order.PutUint32(nodes[idx*8+4:idx*8+8], math.Float32bits(dlamSec))
			idx++
		}
	}
	return buf
}

func TestDecodeNTv2ParsesGridGeometry(t *testing.T) {
	gf, err := DecodeNTv2(buildSyntheticNTv2(t))
	require.NoError(t, err)
	require.Len(t, gf.subgrids, 1)

	sg := gf.subgrids[0]
	assert.Equal(t, 3, sg.nLon)
	assert.Equal(t, 3, sg.nLat)
	assert.InDelta(t, -2*d2r, sg.lowerLon, 1e-12)
	assert.InDelta(t, 0, sg.lowerLat, 1e-12)
}

func TestDecodeNTv2RejectsShortBuffer(t *testing.T) {
	_, err := DecodeNTv2(make([]byte, 10))
	require.Error(t, err)
}

func TestDecodeNTv2RejectsBadNumFields(t *testing.T) {
	buf := buildSyntheticNTv2(t)
	binary.BigEndian.PutUint32(buf[8:12], 3)
	binary.LittleEndian.PutUint32(buf[8:12], 3)
	_, err := DecodeNTv2(buf)
	require.Error(t, err)
}

func TestGridFileShiftAtBilinearInterpolation(t *testing.T) {
	gf, err := DecodeNTv2(buildSyntheticNTv2(t))
	require.NoError(t, err)

	dlam, dphi, ok := gf.shiftAt(-1*d2r, 0.5*d2r)
	require.True(t, ok)
	// Node shifts are stored as float32, so expect the float32-rounded value.
	assert.InDelta(t, -float64(float32(0.02))*sec2radNTv2, dlam, 1e-15)
	assert.InDelta(t, 0.005*sec2radNTv2, dphi, 1e-15)
}

func TestGridFileShiftAtOutsideGridReportsNotOK(t *testing.T) {
	gf, err := DecodeNTv2(buildSyntheticNTv2(t))
	require.NoError(t, err)

	_, _, ok := gf.shiftAt(50*d2r, 50*d2r)
	assert.False(t, ok)
}

func TestGridFileInverseShiftAtConverges(t *testing.T) {
	gf, err := DecodeNTv2(buildSyntheticNTv2(t))
	require.NoError(t, err)

	lam, phi := -1*d2r, 0.5*d2r
	dlam, dphi, ok := gf.shiftAt(lam, phi)
	require.True(t, ok)
	shiftedLam, shiftedPhi := lam+dlam, phi+dphi

	backLam, backPhi, err := gf.inverseShiftAt(shiftedLam, shiftedPhi)
	require.NoError(t, err)
	assert.InDelta(t, lam, backLam, 1e-9)
	assert.InDelta(t, phi, backPhi, 1e-9)
}
