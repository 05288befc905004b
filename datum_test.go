package crsgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatumFromTowgs84SevenParam(t *testing.T) {
	d := datumFromTowgs84([]float64{1, 2, 3, 1, 2, 3, 10})
	assert.Equal(t, DatumSevenParam, d.Kind)
	assert.InDelta(t, 1*sec2rad, d.Rx, 1e-15)
	assert.InDelta(t, 1+10.0/1e6, d.Scale, 1e-12)
}

func TestDatumFromTowgs84ThreeParam(t *testing.T) {
	d := datumFromTowgs84([]float64{1, 2, 3})
	assert.Equal(t, DatumThreeParam, d.Kind)
	assert.Equal(t, 1.0, d.Dx)
}

func TestDatumFromTowgs84AllZeroIsWGS84(t *testing.T) {
	d := datumFromTowgs84([]float64{0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, DatumWGS84, d.Kind)
}

func TestCompareDatumsSameKindEqualParams(t *testing.T) {
	a := &CRS{Datum: DatumRecord{Kind: DatumThreeParam, Dx: 1, Dy: 2, Dz: 3}}
	b := &CRS{Datum: DatumRecord{Kind: DatumThreeParam, Dx: 1, Dy: 2, Dz: 3}}
	assert.True(t, compareDatums(a, b))
}

func TestCompareDatumsDifferentParams(t *testing.T) {
	a := &CRS{Datum: DatumRecord{Kind: DatumThreeParam, Dx: 1}}
	b := &CRS{Datum: DatumRecord{Kind: DatumThreeParam, Dx: 2}}
	assert.False(t, compareDatums(a, b))
}

func TestDatumShiftNoopWhenDatumsCompareEqual(t *testing.T) {
	src := &CRS{Datum: DatumRecord{Kind: DatumWGS84}}
	dst := &CRS{Datum: DatumRecord{Kind: DatumWGS84}}
	lam, phi, z, err := datumShift(nil, src, dst, 0.1, 0.2, 0.3)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0.1, lam)
	assert.Equal(0.2, phi)
	assert.Equal(0.3, z)
}

func TestDatumShiftNoopWhenEitherSideIsNoDatum(t *testing.T) {
	src := &CRS{Datum: DatumRecord{Kind: DatumNone}}
	dst := &CRS{Datum: DatumRecord{Kind: DatumSevenParam, Dx: 100}}
	lam, phi, z, err := datumShift(nil, src, dst, 0.1, 0.2, 0.3)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0.1, lam)
	assert.Equal(0.2, phi)
	assert.Equal(0.3, z)
}
